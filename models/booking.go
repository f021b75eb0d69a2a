package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	UserID    string        `json:"user_id" gorm:"index"`
	TrainerID string        `json:"trainer_id" gorm:"index"`
	Date      time.Time     `json:"date" gorm:"index"`
	Status    BookingStatus `json:"status"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}

// Transition enforces the booking state machine: pending may become
// confirmed or cancelled, confirmed may become cancelled, and cancelled
// is terminal.
func (b *Booking) Transition(next BookingStatus) error {
	switch b.Status {
	case BookingPending:
		if next != BookingConfirmed && next != BookingCancelled {
			return fmt.Errorf("invalid transition from pending to %s", next)
		}
	case BookingConfirmed:
		if next != BookingCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", next)
		}
	case BookingCancelled:
		return fmt.Errorf("no transitions allowed from cancelled")
	}
	b.Status = next
	return nil
}
