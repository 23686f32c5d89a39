package models

import "tsapi/src/types"

type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Email        string `gorm:"uniqueIndex" json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:'user'" json:"role,omitempty"`

	Orders []Order `json:"orders,omitempty"`

	types.Timestamps
}
