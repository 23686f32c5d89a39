package main

import (
	"errors"
	"log"
	"net/http"
	"tsapi/src/db"
	"tsapi/src/models"
	"tsapi/src/types"
	"tsapi/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func guestAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	auth := apiv1.Group("/auth")
	auth.
		POST("/register", func(ctx *gin.Context) {
			var body types.RegisterUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hash, err := utils.HashPassword(body.Password)
			if err != nil {
				log.Printf("Error hashing password: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			user := models.User{
				Email:        body.Email,
				Name:         body.Name,
				PasswordHash: hash,
			}
			db := db.GetDb()
			if err := db.Create(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "a user with this email already exists", "field": "email"})
					return
				}
				log.Printf("Error creating user: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": user.ID})
		}).
		POST("/login", func(ctx *gin.Context) {
			var body types.LoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var user models.User
			if err := db.Where(&models.User{Email: body.Email}).First(&user).Error; err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			if !utils.CheckPassword(user.PasswordHash, body.Password) {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			token, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
			if err != nil {
				log.Printf("Error generating JWT token: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"token": token})
		})
	return apiv1
}
