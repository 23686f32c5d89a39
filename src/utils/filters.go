package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"tsapi/src/config"
	"tsapi/src/types"

	"gorm.io/gorm"
)

// ParamToIDs converts a comma-separated id list ("1,2,3") into ids.
func ParamToIDs(field, qs string) ([]uint, error) {
	parts := strings.Split(qs, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || id < 1 {
			return nil, &types.FieldError{
				Field:   field,
				Message: fmt.Sprintf("expected a comma-separated list of ids, got %q", qs),
			}
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func FilterRoutes(tx *gorm.DB, f *types.RouteQueryFilters) (*gorm.DB, error) {
	if f.Source != "" {
		ids, err := ParamToIDs("source", f.Source)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("source_id IN ?", ids)
	}
	if f.Destination != "" {
		ids, err := ParamToIDs("destination", f.Destination)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("destination_id IN ?", ids)
	}
	return tx.Distinct(), nil
}

func FilterTrains(tx *gorm.DB, f *types.TrainQueryFilters) *gorm.DB {
	if f.Name != "" {
		tx = tx.Where("name ILIKE ?", "%"+f.Name+"%")
	}
	if f.TrainType > 0 {
		tx = tx.Where("train_type_id = ?", f.TrainType)
	}
	return tx.Distinct()
}

// FilterJourneys matches departure_time against the whole calendar day
// regardless of the time-of-day component.
func FilterJourneys(tx *gorm.DB, f *types.JourneyQueryFilters) (*gorm.DB, error) {
	if f.DepartureTime != "" {
		day, err := time.Parse(config.DATE_PARSE_FORMAT, f.DepartureTime)
		if err != nil {
			return nil, &types.FieldError{
				Field:   "departure_time",
				Message: fmt.Sprintf("expected a date in %s format, got %q", config.DATE_PARSE_FORMAT, f.DepartureTime),
			}
		}
		tx = tx.Where("departure_time >= ? AND departure_time < ?", day, day.AddDate(0, 0, 1))
	}
	if f.Route > 0 {
		tx = tx.Where("route_id = ?", f.Route)
	}
	return tx, nil
}
