package utils

import (
	"errors"
	"testing"
	"time"
	"tsapi/src/models"
	"tsapi/src/types"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func dryRunSession(t *testing.T) *gorm.DB {
	db, _ := newMockDB(t)
	return db.Session(&gorm.Session{DryRun: true})
}

func TestParamToIDs(t *testing.T) {
	ids, err := ParamToIDs("source", "1,2,3")
	assert.Nil(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)

	ids, err = ParamToIDs("source", " 4 , 5 ")
	assert.Nil(t, err)
	assert.Equal(t, []uint{4, 5}, ids)

	for _, qs := range []string{"", "a,b", "1,,2", "0", "-3"} {
		_, err := ParamToIDs("source", qs)
		var fieldErr *types.FieldError
		assert.Truef(t, errors.As(err, &fieldErr), "expected a field error for %q", qs)
		assert.Equal(t, "source", fieldErr.Field)
	}
}

func TestFilterRoutes(t *testing.T) {
	t.Run("filters by source and destination id lists", func(t *testing.T) {
		session := dryRunSession(t).Model(&models.Route{})
		tx, err := FilterRoutes(session, &types.RouteQueryFilters{Source: "1,2", Destination: "3"})
		assert.Nil(t, err)

		var routes []models.Route
		tx = tx.Find(&routes)
		sql := tx.Statement.SQL.String()
		assert.Contains(t, sql, "source_id IN")
		assert.Contains(t, sql, "destination_id IN")
		assert.Contains(t, sql, "SELECT DISTINCT")
	})

	t.Run("rejects a malformed id list", func(t *testing.T) {
		session := dryRunSession(t).Model(&models.Route{})
		_, err := FilterRoutes(session, &types.RouteQueryFilters{Source: "one"})
		var fieldErr *types.FieldError
		assert.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "source", fieldErr.Field)
	})
}

func TestFilterTrains(t *testing.T) {
	session := dryRunSession(t).Model(&models.Train{})
	tx := FilterTrains(session, &types.TrainQueryFilters{Name: "express", TrainType: 2})

	var trains []models.Train
	tx = tx.Find(&trains)
	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "name ILIKE")
	assert.Contains(t, sql, "train_type_id =")
	assert.Contains(t, tx.Statement.Vars, "%express%")
}

func TestFilterJourneys(t *testing.T) {
	t.Run("matches the whole calendar day", func(t *testing.T) {
		session := dryRunSession(t).Model(&models.Journey{})
		tx, err := FilterJourneys(session, &types.JourneyQueryFilters{DepartureTime: "2024-08-22", Route: 7})
		assert.Nil(t, err)

		var journeys []models.Journey
		tx = tx.Find(&journeys)
		sql := tx.Statement.SQL.String()
		assert.Contains(t, sql, "departure_time >=")
		assert.Contains(t, sql, "departure_time <")
		assert.Contains(t, sql, "route_id =")

		day := time.Date(2024, 8, 22, 0, 0, 0, 0, time.UTC)
		assert.Contains(t, tx.Statement.Vars, day)
		assert.Contains(t, tx.Statement.Vars, day.AddDate(0, 0, 1))
	})

	t.Run("rejects a datetime where a date is expected", func(t *testing.T) {
		session := dryRunSession(t).Model(&models.Journey{})
		_, err := FilterJourneys(session, &types.JourneyQueryFilters{DepartureTime: "2024-08-22T10:00:00"})
		var fieldErr *types.FieldError
		assert.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "departure_time", fieldErr.Field)
	})

	t.Run("passes through unfiltered", func(t *testing.T) {
		session := dryRunSession(t).Model(&models.Journey{})
		tx, err := FilterJourneys(session, &types.JourneyQueryFilters{})
		assert.Nil(t, err)

		var journeys []models.Journey
		tx = tx.Find(&journeys)
		sql := tx.Statement.SQL.String()
		assert.NotContains(t, sql, "departure_time")
		assert.NotContains(t, sql, "route_id")
	})
}
