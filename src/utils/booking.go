package utils

import (
	"errors"
	"fmt"
	"log"
	"time"
	"tsapi/src/db"
	"tsapi/src/models"
	"tsapi/src/types"

	"gorm.io/gorm"
)

// ValidateTicketSeat checks that a (cargo, seat) pair is physically on the
// train. It does not check occupancy; that is enforced by the unique index
// on (journey_id, cargo, seat).
func ValidateTicketSeat(cargo, seat uint, train *models.Train) error {
	if cargo < 1 || cargo > train.CargoNum {
		return &types.FieldError{
			Field:   "cargo",
			Message: fmt.Sprintf("cargo must be in range [1, %d], got %d", train.CargoNum, cargo),
		}
	}
	if seat < 1 || seat > train.PlacesInCargo {
		return &types.FieldError{
			Field:   "seat",
			Message: fmt.Sprintf("seat must be in range [1, %d], got %d", train.PlacesInCargo, seat),
		}
	}
	return nil
}

func ValidateRoute(source, destination, distance uint) error {
	if source == destination {
		return &types.FieldError{
			Field:   "destination",
			Message: "source and destination stations cannot be the same",
		}
	}
	if distance < 1 {
		return &types.FieldError{
			Field:   "distance",
			Message: "distance must be a positive integer",
		}
	}
	return nil
}

func ValidateJourneyTimes(departure, arrival time.Time) error {
	if !arrival.After(departure) {
		return &types.FieldError{
			Field:   "arrival_time",
			Message: "arrival time must be after departure time",
		}
	}
	return nil
}

// TicketsAvailable recomputes the free-seat count for a journey on every
// call so concurrent bookings are reflected. The journey's Train must be
// loaded.
func TicketsAvailable(tx *gorm.DB, journey *models.Journey) (int64, error) {
	var sold int64
	if err := tx.
		Model(&models.Ticket{}).
		Where(&models.Ticket{JourneyID: journey.ID}).
		Count(&sold).
		Error; err != nil {
		return 0, err
	}
	return int64(journey.Train.Capacity()) - sold, nil
}

func TakenPlaces(tx *gorm.DB, journeyID uint) ([]types.TakenPlace, error) {
	places := make([]types.TakenPlace, 0)
	err := tx.
		Model(&models.Ticket{}).
		Select("cargo", "seat").
		Where(&models.Ticket{JourneyID: journeyID}).
		Order("cargo, seat").
		Find(&places).
		Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

// CreateOrder persists one order plus all requested tickets in a single
// transaction. Any validation failure, missing journey, or duplicate seat
// rolls the whole batch back; no partial order is ever visible.
func CreateOrder(params *types.CreateOrderRequestBody, userID uint) (*models.Order, error) {
	db := db.GetDb()
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{UserID: userID}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		trains := map[uint]*models.Train{}
		for _, t := range params.Tickets {
			train, ok := trains[t.Journey]
			if !ok {
				var journey models.Journey
				if err := tx.First(&journey, t.Journey).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return &types.FieldError{
							Field:   "journey",
							Message: fmt.Sprintf("journey [%d] does not exist", t.Journey),
						}
					}
					return err
				}
				var tr models.Train
				if err := tx.First(&tr, journey.TrainID).Error; err != nil {
					return err
				}
				train = &tr
				trains[t.Journey] = train
			}
			if err := ValidateTicketSeat(t.Cargo, t.Seat, train); err != nil {
				return err
			}
			ticket := models.Ticket{
				Cargo:     t.Cargo,
				Seat:      t.Seat,
				JourneyID: t.Journey,
				OrderID:   order.ID,
			}
			if err := tx.Create(&ticket).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return &types.FieldError{
						Field:   "seat",
						Message: fmt.Sprintf("place (cargo %d, seat %d) on journey [%d] is already booked", t.Cargo, t.Seat, t.Journey),
					}
				}
				log.Printf("error in Ticket transaction: %s\n", err.Error())
				return err
			}
			order.Tickets = append(order.Tickets, ticket)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func formatUnit(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatTravelTime renders a journey duration the way the detail endpoint
// reports it.
func FormatTravelTime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%s, %s, %s", formatUnit(days, "day"), formatUnit(hours, "hour"), formatUnit(minutes, "minute"))
	}
	if hours > 0 {
		return fmt.Sprintf("%s, %s", formatUnit(hours, "hour"), formatUnit(minutes, "minute"))
	}
	return formatUnit(minutes, "minute")
}
