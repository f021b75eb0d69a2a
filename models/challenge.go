package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Challenge struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"` // workout, meal, distance
	Target      int       `json:"target"`
	Unit        string    `json:"unit"`
	Reward      int       `json:"reward"` // points
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// UserChallenge tracks one user's progress in one challenge.
type UserChallenge struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index:idx_user_challenge"`
	ChallengeID string     `json:"challenge_id" gorm:"index:idx_user_challenge"`
	Progress    int        `json:"progress"`
	IsCompleted bool       `json:"is_completed"`
	JoinedAt    time.Time  `json:"joined_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (uc *UserChallenge) BeforeCreate(tx *gorm.DB) error {
	if uc.ID == "" {
		uc.ID = uuid.NewString()
	}
	if uc.JoinedAt.IsZero() {
		uc.JoinedAt = time.Now()
	}
	return nil
}
