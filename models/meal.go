package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Meal struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	Name      string    `json:"name"`
	MealType  string    `json:"meal_type"` // breakfast, lunch, dinner, snack
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Fiber     float64   `json:"fiber"`
	Sugar     float64   `json:"sugar"`
	PhotoURL  string    `json:"photo_url"`
	Notes     string    `json:"notes"`
	Date      time.Time `json:"date" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *Meal) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Calories <= 0 {
		return fmt.Errorf("calories must be a positive number")
	}
	return nil
}
