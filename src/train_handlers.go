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

func trainTypeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/train_types", func(ctx *gin.Context) {
			db := db.GetDb()
			var trainTypes []models.TrainType
			if err := db.Order("name").Find(&trainTypes).Error; err != nil {
				log.Printf("Error retrieving TrainTypes: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trainTypes, "count": len(trainTypes)})
		}).
		POST("/train_types", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateTrainTypeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			trainType := models.TrainType{Name: body.Name}
			db := db.GetDb()
			if err := db.Create(&trainType).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "a train type with this name already exists", "field": "name"})
					return
				}
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": trainType})
		})
	return g
}

func trainHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/trains", func(ctx *gin.Context) {
			var filters types.TrainQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var trains []models.Train
			if err := utils.FilterTrains(db.Model(&models.Train{}), &filters).
				Preload("TrainType").
				Order("name").
				Find(&trains).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			rows := make([]gin.H, 0, len(trains))
			for _, t := range trains {
				rows = append(rows, gin.H{
					"id":              t.ID,
					"name":            t.Name,
					"cargo_num":       t.CargoNum,
					"places_in_cargo": t.PlacesInCargo,
					"train_type":      t.TrainType.Name,
				})
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rows, "count": len(rows)})
		}).
		POST("/trains", func(ctx *gin.Context) {
			var body types.CreateTrainRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var trainType models.TrainType
			if err := db.First(&trainType, body.TrainType).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "train type does not exist", "field": "train_type"})
					return
				}
				respondDomainError(ctx, err)
				return
			}
			train := models.Train{
				Name:          body.Name,
				CargoNum:      body.CargoNum,
				PlacesInCargo: body.PlacesInCargo,
				TrainTypeID:   trainType.ID,
			}
			if err := db.Create(&train).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "a train with this name already exists", "field": "name"})
					return
				}
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": train})
		}).
		GET("/trains/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var train models.Train
			if err := db.Preload("TrainType").First(&train, params.ID).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			resp := gin.H{
				"id":              train.ID,
				"name":            train.Name,
				"cargo_num":       train.CargoNum,
				"places_in_cargo": train.PlacesInCargo,
				"capacity":        train.Capacity(),
				"train_type":      train.TrainType,
			}
			if train.ImageKey != nil {
				if url, err := utils.ResolveImageURL(*train.ImageKey); err == nil {
					resp["image"] = url
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": resp})
		}).
		POST("/trains/:id/upload-image", middlewares.AdminRequired, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var train models.Train
			if err := db.First(&train, params.ID).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			key, url, err := utils.SaveUploadedImage(ctx, train.Name)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			if err := db.
				Model(&models.Train{}).
				Where(&models.Train{ID: train.ID}).
				Update("image_key", key).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"image": url})
		})
	return g
}
