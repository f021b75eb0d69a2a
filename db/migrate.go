package db

import (
	"gorm.io/gorm"

	"github.com/gitmusaddique/FitnessTracker-sub000/models"
)

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.Meal{},
		&models.Trainer{},
		&models.Gym{},
		&models.Booking{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.Achievement{},
	)
}
