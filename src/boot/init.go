package boot

import (
	"log"
	"tsapi/src/db"
	"tsapi/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Station{},
		&models.Route{},
		&models.TrainType{},
		&models.Train{},
		&models.Crew{},
		&models.Journey{},
		&models.Order{},
		&models.Ticket{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
