package models

import "tsapi/src/types"

// Order is immutable once created; tickets exist only as part of an order.
type Order struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `json:"user_id"`

	User    User     `json:"-"`
	Tickets []Ticket `json:"tickets,omitempty"`

	types.Timestamps
}

// The unique index on (journey_id, cargo, seat) is the race guard against
// concurrent double-booking; application checks are advisory only.
type Ticket struct {
	ID        uint `gorm:"primarykey" json:"id"`
	Cargo     uint `gorm:"uniqueIndex:idx_journey_cargo_seat" json:"cargo"`
	Seat      uint `gorm:"uniqueIndex:idx_journey_cargo_seat" json:"seat"`
	JourneyID uint `gorm:"uniqueIndex:idx_journey_cargo_seat" json:"journey"`
	OrderID   uint `json:"order"`

	Journey Journey `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Order   Order   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	types.Timestamps
}
