package main

import (
	"errors"
	"log"
	"net/http"
	"tsapi/src/db"
	"tsapi/src/middlewares"
	"tsapi/src/models"
	"tsapi/src/types"
	"tsapi/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func stationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/stations", func(ctx *gin.Context) {
			db := db.GetDb()
			var stations []models.Station
			if err := db.Order("name").Find(&stations).Error; err != nil {
				log.Printf("Error retrieving Stations: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": stations, "count": len(stations)})
		}).
		POST("/stations", func(ctx *gin.Context) {
			var body types.CreateStationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			station := models.Station{
				Name:      body.Name,
				Latitude:  *body.Latitude,
				Longitude: *body.Longitude,
			}
			db := db.GetDb()
			if err := db.Create(&station).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "a station with this name and location already exists", "field": "name"})
					return
				}
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": station})
		}).
		GET("/stations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var station models.Station
			if err := db.First(&station, params.ID).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			resp := gin.H{
				"id":        station.ID,
				"name":      station.Name,
				"latitude":  station.Latitude,
				"longitude": station.Longitude,
			}
			if station.ImageKey != nil {
				if url, err := utils.ResolveImageURL(*station.ImageKey); err == nil {
					resp["image"] = url
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": resp})
		}).
		POST("/stations/:id/upload-image", middlewares.AdminRequired, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var station models.Station
			if err := db.First(&station, params.ID).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			key, url, err := utils.SaveUploadedImage(ctx, station.Name)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			if err := db.
				Model(&models.Station{}).
				Where(&models.Station{ID: station.ID}).
				Update("image_key", key).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"image": url})
		})
	return g
}
