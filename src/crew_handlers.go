package main

import (
	"log"
	"net/http"
	"tsapi/src/db"
	"tsapi/src/middlewares"
	"tsapi/src/models"
	"tsapi/src/types"

	"github.com/gin-gonic/gin"
)

func crewHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/crews", func(ctx *gin.Context) {
			db := db.GetDb()
			var crews []models.Crew
			if err := db.Order("last_name, first_name").Find(&crews).Error; err != nil {
				log.Printf("Error retrieving Crew: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			rows := make([]gin.H, 0, len(crews))
			for _, c := range crews {
				rows = append(rows, gin.H{
					"id":         c.ID,
					"first_name": c.FirstName,
					"last_name":  c.LastName,
					"full_name":  c.FullName(),
				})
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rows, "count": len(rows)})
		}).
		POST("/crews", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateCrewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			crew := models.Crew{
				FirstName: body.FirstName,
				LastName:  body.LastName,
			}
			db := db.GetDb()
			if err := db.Create(&crew).Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": crew})
		})
	return g
}
