package main

import (
	"net/http"
	"tsapi/src/db"
	"tsapi/src/models"
	"tsapi/src/types"
	"tsapi/src/utils"

	"github.com/gin-gonic/gin"
)

func routeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/routes", func(ctx *gin.Context) {
			var filters types.RouteQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			tx, err := utils.FilterRoutes(db.Model(&models.Route{}), &filters)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			var routes []models.Route
			if err := tx.
				Preload("Source").
				Preload("Destination").
				Find(&routes).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			rows := make([]gin.H, 0, len(routes))
			for _, r := range routes {
				rows = append(rows, gin.H{
					"id":          r.ID,
					"source":      r.Source.Name,
					"destination": r.Destination.Name,
					"distance":    r.Distance,
				})
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rows, "count": len(rows)})
		}).
		POST("/routes", func(ctx *gin.Context) {
			var body types.CreateRouteRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.ValidateRoute(body.Source, body.Destination, body.Distance); err != nil {
				respondDomainError(ctx, err)
				return
			}
			db := db.GetDb()
			var count int64
			if err := db.
				Model(&models.Station{}).
				Where("id IN ?", []uint{body.Source, body.Destination}).
				Count(&count).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			if count != 2 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "source and destination must reference existing stations", "field": "source"})
				return
			}
			route := models.Route{
				SourceID:      body.Source,
				DestinationID: body.Destination,
				Distance:      body.Distance,
			}
			if err := db.Create(&route).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": route})
		}).
		GET("/routes/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var route models.Route
			if err := db.
				Preload("Source").
				Preload("Destination").
				First(&route, params.ID).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{
				"id":          route.ID,
				"source":      route.Source,
				"destination": route.Destination,
				"distance":    route.Distance,
			}})
		})
	return g
}
