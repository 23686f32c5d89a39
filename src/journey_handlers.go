package main

import (
	"errors"
	"net/http"
	"time"
	"tsapi/src/config"
	"tsapi/src/db"
	"tsapi/src/models"
	"tsapi/src/types"
	"tsapi/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const journeyPageSize = 5

func parseJourneyTimes(body *types.CreateJourneyRequestBody) (departure, arrival time.Time, err error) {
	departure, err = time.Parse(config.TIME_PARSE_FORMAT, body.DepartureTime)
	if err != nil {
		err = &types.FieldError{Field: "departure_time", Message: "invalid datetime format"}
		return
	}
	arrival, err = time.Parse(config.TIME_PARSE_FORMAT, body.ArrivalTime)
	if err != nil {
		err = &types.FieldError{Field: "arrival_time", Message: "invalid datetime format"}
		return
	}
	err = utils.ValidateJourneyTimes(departure, arrival)
	return
}

// resolveJourneyRefs loads the route, train and full crew list a journey
// body references, failing with a FieldError on any missing id.
func resolveJourneyRefs(tx *gorm.DB, body *types.CreateJourneyRequestBody) (*models.Route, *models.Train, []*models.Crew, error) {
	var route models.Route
	if err := tx.First(&route, body.Route).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, &types.FieldError{Field: "route", Message: "route does not exist"}
		}
		return nil, nil, nil, err
	}
	var train models.Train
	if err := tx.First(&train, body.Train).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, &types.FieldError{Field: "train", Message: "train does not exist"}
		}
		return nil, nil, nil, err
	}
	var crews []*models.Crew
	if err := tx.Find(&crews, body.Crew).Error; err != nil {
		return nil, nil, nil, err
	}
	if len(crews) != len(body.Crew) {
		return nil, nil, nil, &types.FieldError{Field: "crew", Message: "crew list references missing crew members"}
	}
	return &route, &train, crews, nil
}

func journeyHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/journeys", func(ctx *gin.Context) {
			var filters types.JourneyQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			p := utils.GetPagination(ctx, journeyPageSize)
			db := db.GetDb()

			counted, err := utils.FilterJourneys(db.Model(&models.Journey{}), &filters)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			var total int64
			if err := counted.Count(&total).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}

			listed, err := utils.FilterJourneys(db.Model(&models.Journey{}), &filters)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			var journeys []models.Journey
			if err := listed.
				Order("departure_time desc").
				Offset(p.Offset).
				Limit(p.PageSize).
				Preload("Route.Source").
				Preload("Route.Destination").
				Preload("Train").
				Preload("Crew").
				Find(&journeys).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			rows := make([]gin.H, 0, len(journeys))
			for i := range journeys {
				j := &journeys[i]
				available, err := utils.TicketsAvailable(db, j)
				if err != nil {
					respondDomainError(ctx, err)
					return
				}
				crew := make([]string, 0, len(j.Crew))
				for _, c := range j.Crew {
					crew = append(crew, c.FullName())
				}
				rows = append(rows, gin.H{
					"id":                j.ID,
					"route":             j.Route.CompletePath(),
					"train":             j.Train.Name,
					"departure_time":    j.DepartureTime,
					"arrival_time":      j.ArrivalTime,
					"crew":              crew,
					"tickets_available": available,
				})
			}
			ctx.JSON(http.StatusOK, gin.H{
				"data":      rows,
				"count":     total,
				"page":      p.Page,
				"page_size": p.PageSize,
			})
		}).
		POST("/journeys", func(ctx *gin.Context) {
			var body types.CreateJourneyRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			departure, arrival, err := parseJourneyTimes(&body)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			db := db.GetDb()
			var journey models.Journey
			err = db.Transaction(func(tx *gorm.DB) error {
				route, train, crews, err := resolveJourneyRefs(tx, &body)
				if err != nil {
					return err
				}
				journey = models.Journey{
					RouteID:       route.ID,
					TrainID:       train.ID,
					DepartureTime: departure,
					ArrivalTime:   arrival,
					Crew:          crews,
				}
				return tx.Create(&journey).Error
			})
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": journey.ID})
		}).
		GET("/journeys/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var journey models.Journey
			if err := db.
				Preload("Route.Source").
				Preload("Route.Destination").
				Preload("Train.TrainType").
				Preload("Crew").
				First(&journey, params.ID).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			available, err := utils.TicketsAvailable(db, &journey)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			taken, err := utils.TakenPlaces(db, journey.ID)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			crew := make([]gin.H, 0, len(journey.Crew))
			for _, c := range journey.Crew {
				crew = append(crew, gin.H{
					"id":         c.ID,
					"first_name": c.FirstName,
					"last_name":  c.LastName,
					"full_name":  c.FullName(),
				})
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{
				"id": journey.ID,
				"route": gin.H{
					"id":          journey.Route.ID,
					"source":      journey.Route.Source.Name,
					"destination": journey.Route.Destination.Name,
					"distance":    journey.Route.Distance,
				},
				"train": gin.H{
					"id":              journey.Train.ID,
					"name":            journey.Train.Name,
					"cargo_num":       journey.Train.CargoNum,
					"places_in_cargo": journey.Train.PlacesInCargo,
					"train_type":      journey.Train.TrainType.Name,
				},
				"departure_time":    journey.DepartureTime,
				"arrival_time":      journey.ArrivalTime,
				"travel_time":       utils.FormatTravelTime(journey.TravelTime()),
				"crew":              crew,
				"tickets_available": available,
				"taken_places":      taken,
			}})
		}).
		PUT("/journeys/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateJourneyRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			departure, arrival, err := parseJourneyTimes(&body)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			db := db.GetDb()
			err = db.Transaction(func(tx *gorm.DB) error {
				var journey models.Journey
				if err := tx.First(&journey, params.ID).Error; err != nil {
					return err
				}
				route, train, crews, err := resolveJourneyRefs(tx, &body)
				if err != nil {
					return err
				}
				if err := tx.
					Model(&journey).
					Updates(&models.Journey{
						RouteID:       route.ID,
						TrainID:       train.ID,
						DepartureTime: departure,
						ArrivalTime:   arrival,
					}).
					Error; err != nil {
					return err
				}
				return tx.Model(&journey).Association("Crew").Replace(crews)
			})
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/journeys/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var journey models.Journey
			if err := db.First(&journey, params.ID).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			if err := db.Delete(&journey).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
