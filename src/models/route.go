package models

import (
	"fmt"
	"tsapi/src/types"
)

type Route struct {
	ID            uint `gorm:"primarykey" json:"id"`
	SourceID      uint `json:"source"`
	DestinationID uint `json:"destination"`
	Distance      uint `json:"distance"`

	Source      Station `gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE" json:"-"`
	Destination Station `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE" json:"-"`

	types.Timestamps
}

// CompletePath requires Source and Destination to be loaded.
func (r *Route) CompletePath() string {
	return fmt.Sprintf("%s - %s", r.Source.Name, r.Destination.Name)
}
