package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workout struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	Type      string    `json:"type"`
	Duration  int       `json:"duration"` // minutes
	Calories  int       `json:"calories"`
	Distance  float64   `json:"distance"` // km
	Notes     string    `json:"notes"`
	PhotoURL  string    `json:"photo_url"`
	Date      time.Time `json:"date" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

func (w *Workout) Validate() error {
	if w.Type == "" {
		return fmt.Errorf("type is required")
	}
	if w.Duration <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes")
	}
	if w.Calories < 0 {
		return fmt.Errorf("calories cannot be negative")
	}
	if w.Distance < 0 {
		return fmt.Errorf("distance cannot be negative")
	}
	return nil
}
