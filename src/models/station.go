package models

import "tsapi/src/types"

// Station identity is the (name, latitude, longitude) triple.
type Station struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Name      string  `gorm:"size:255;uniqueIndex:idx_station_identity" json:"name"`
	Latitude  float64 `gorm:"uniqueIndex:idx_station_identity" json:"latitude"`
	Longitude float64 `gorm:"uniqueIndex:idx_station_identity" json:"longitude"`
	ImageKey  *string `json:"-"`

	types.Timestamps
}
