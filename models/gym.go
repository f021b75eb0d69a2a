package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gym struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Address     string    `json:"address"`
	Price       int       `json:"price"` // cents per month
	Rating      float64   `json:"rating" gorm:"type:decimal(2,1)"`
	ReviewCount int       `json:"review_count"`
	Amenities   string    `json:"amenities"` // comma separated
	Hours       string    `json:"hours"`
	Distance    float64   `json:"distance"` // km
	HasPool     bool      `json:"has_pool"`
	HasSauna    bool      `json:"has_sauna"`
	HasClasses  bool      `json:"has_classes"`
	HasPT       bool      `json:"has_pt"`
	Contact     string    `json:"contact"`
	PhotoURL    string    `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (g *Gym) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Rating < 0 {
		g.Rating = 0
	} else if g.Rating > 5 {
		g.Rating = 5
	}
	return nil
}

func (g *Gym) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("name is required")
	}
	if g.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if g.Rating < 0 || g.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	if g.ReviewCount < 0 {
		return fmt.Errorf("review count cannot be negative")
	}
	return nil
}

type GymPatch struct {
	Name        *string  `json:"name"`
	Location    *string  `json:"location"`
	Address     *string  `json:"address"`
	Price       *int     `json:"price"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"review_count"`
	Amenities   *string  `json:"amenities"`
	Hours       *string  `json:"hours"`
	Distance    *float64 `json:"distance"`
	HasPool     *bool    `json:"has_pool"`
	HasSauna    *bool    `json:"has_sauna"`
	HasClasses  *bool    `json:"has_classes"`
	HasPT       *bool    `json:"has_pt"`
	Contact     *string  `json:"contact"`
	PhotoURL    *string  `json:"photo_url"`
}

func (p GymPatch) Validate() error {
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

func (p GymPatch) Apply(g Gym) Gym {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Location != nil {
		g.Location = *p.Location
	}
	if p.Address != nil {
		g.Address = *p.Address
	}
	if p.Price != nil {
		g.Price = *p.Price
	}
	if p.Rating != nil {
		g.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		g.ReviewCount = *p.ReviewCount
	}
	if p.Amenities != nil {
		g.Amenities = *p.Amenities
	}
	if p.Hours != nil {
		g.Hours = *p.Hours
	}
	if p.Distance != nil {
		g.Distance = *p.Distance
	}
	if p.HasPool != nil {
		g.HasPool = *p.HasPool
	}
	if p.HasSauna != nil {
		g.HasSauna = *p.HasSauna
	}
	if p.HasClasses != nil {
		g.HasClasses = *p.HasClasses
	}
	if p.HasPT != nil {
		g.HasPT = *p.HasPT
	}
	if p.Contact != nil {
		g.Contact = *p.Contact
	}
	if p.PhotoURL != nil {
		g.PhotoURL = *p.PhotoURL
	}
	return g
}
