package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trainer struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Specialty      string    `json:"specialty"`
	Bio            string    `json:"bio"`
	Price          int       `json:"price"` // cents per session
	Rating         float64   `json:"rating" gorm:"type:decimal(2,1)"`
	ReviewCount    int       `json:"review_count"`
	PhotoURL       string    `json:"photo_url"`
	Location       string    `json:"location"`
	Contact        string    `json:"contact"`
	Experience     int       `json:"experience"` // years
	Certifications string    `json:"certifications"`
	IsVerified     bool      `json:"is_verified" gorm:"default:false"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (t *Trainer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	// Clamp rating into the valid range
	if t.Rating < 0 {
		t.Rating = 0
	} else if t.Rating > 5 {
		t.Rating = 5
	}
	return nil
}

func (t *Trainer) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if t.Rating < 0 || t.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	if t.ReviewCount < 0 {
		return fmt.Errorf("review count cannot be negative")
	}
	return nil
}

type TrainerPatch struct {
	Name           *string  `json:"name"`
	Specialty      *string  `json:"specialty"`
	Bio            *string  `json:"bio"`
	Price          *int     `json:"price"`
	Rating         *float64 `json:"rating"`
	ReviewCount    *int     `json:"review_count"`
	PhotoURL       *string  `json:"photo_url"`
	Location       *string  `json:"location"`
	Contact        *string  `json:"contact"`
	Experience     *int     `json:"experience"`
	Certifications *string  `json:"certifications"`
	IsVerified     *bool    `json:"is_verified"`
	IsActive       *bool    `json:"is_active"`
}

func (p TrainerPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	if p.ReviewCount != nil && *p.ReviewCount < 0 {
		return fmt.Errorf("review count cannot be negative")
	}
	return nil
}

func (p TrainerPatch) Apply(t Trainer) Trainer {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Specialty != nil {
		t.Specialty = *p.Specialty
	}
	if p.Bio != nil {
		t.Bio = *p.Bio
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		t.ReviewCount = *p.ReviewCount
	}
	if p.PhotoURL != nil {
		t.PhotoURL = *p.PhotoURL
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Contact != nil {
		t.Contact = *p.Contact
	}
	if p.Experience != nil {
		t.Experience = *p.Experience
	}
	if p.Certifications != nil {
		t.Certifications = *p.Certifications
	}
	if p.IsVerified != nil {
		t.IsVerified = *p.IsVerified
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
	return t
}
