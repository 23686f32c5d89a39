package models

import "tsapi/src/types"

type TrainType struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:64;uniqueIndex" json:"name"`

	Trains []Train `json:"trains,omitempty"`

	types.Timestamps
}

type Train struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `gorm:"size:64;uniqueIndex" json:"name"`
	CargoNum      uint    `json:"cargo_num"`
	PlacesInCargo uint    `json:"places_in_cargo"`
	TrainTypeID   uint    `json:"train_type"`
	ImageKey      *string `json:"-"`

	TrainType TrainType `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	types.Timestamps
}

// Capacity is the seat universe of the train: cargo cars times places per car.
func (t *Train) Capacity() uint {
	return t.CargoNum * t.PlacesInCargo
}
