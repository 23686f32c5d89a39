package types

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

// FieldError is a domain validation failure tied to a single request field.
// Handlers surface it as a 400 response naming the field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateStationRequestBody struct {
	Name      string   `json:"name" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type CreateRouteRequestBody struct {
	Source      uint `json:"source" binding:"required"`
	Destination uint `json:"destination" binding:"required"`
	Distance    uint `json:"distance" binding:"required"`
}

type CreateTrainTypeRequestBody struct {
	Name string `json:"name" binding:"required"`
}

type CreateTrainRequestBody struct {
	Name          string `json:"name" binding:"required"`
	CargoNum      uint   `json:"cargo_num" binding:"required"`
	PlacesInCargo uint   `json:"places_in_cargo" binding:"required"`
	TrainType     uint   `json:"train_type" binding:"required"`
}

type CreateCrewRequestBody struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type CreateJourneyRequestBody struct {
	Route         uint   `json:"route" binding:"required"`
	Train         uint   `json:"train" binding:"required"`
	DepartureTime string `json:"departure_time" binding:"required,traveldate"`
	ArrivalTime   string `json:"arrival_time" binding:"required,traveldate,gtdate=DepartureTime"`
	Crew          []uint `json:"crew" binding:"required,min=1"`
}

type TicketRequest struct {
	Cargo   uint `json:"cargo" binding:"required"`
	Seat    uint `json:"seat" binding:"required"`
	Journey uint `json:"journey" binding:"required"`
}

type CreateOrderRequestBody struct {
	Tickets []TicketRequest `json:"tickets" binding:"required,min=1,dive"`
}

type RegisterUserRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name,omitempty"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RouteQueryFilters struct {
	Source      string `form:"source"`
	Destination string `form:"destination"`
}

type TrainQueryFilters struct {
	Name      string `form:"name"`
	TrainType uint   `form:"train_type"`
}

type JourneyQueryFilters struct {
	DepartureTime string `form:"departure_time"`
	Route         uint   `form:"route"`
}

type TicketCodeURIParams struct {
	OrderID  uint `uri:"id" binding:"required"`
	TicketID uint `uri:"ticketId" binding:"required"`
}

// TakenPlace is a (cargo, seat) pair already sold on a journey.
type TakenPlace struct {
	Cargo uint `json:"cargo"`
	Seat  uint `json:"seat"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
