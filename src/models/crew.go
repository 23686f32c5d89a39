package models

import (
	"fmt"
	"tsapi/src/types"
)

type Crew struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	FirstName string `gorm:"size:64" json:"first_name"`
	LastName  string `gorm:"size:64" json:"last_name"`

	Journeys []*Journey `gorm:"many2many:journey_crews;" json:"journeys,omitempty"`

	types.Timestamps
}

func (c *Crew) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}
