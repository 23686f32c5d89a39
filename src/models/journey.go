package models

import (
	"time"
	"tsapi/src/types"
)

type Journey struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	RouteID       uint      `json:"route"`
	TrainID       uint      `json:"train"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`

	Route   Route    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Train   Train    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Crew    []*Crew  `gorm:"many2many:journey_crews;" json:"-"`
	Tickets []Ticket `json:"-"`

	types.Timestamps
}

func (j *Journey) TravelTime() time.Duration {
	return j.ArrivalTime.Sub(j.DepartureTime)
}
