package storage

import (
	"errors"
	"time"

	"github.com/gitmusaddique/FitnessTracker-sub000/models"
)

var (
	// ErrNotFound is the normal "no such entity" outcome, not a fault.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user create would violate
	// email uniqueness.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Storage is the capability set handlers talk to. Both backends — the
// in-memory maps and the embedded SQL database — implement it, so
// nothing above this interface depends on the backend choice.
//
// Ownership is not checked here; handlers compare the entity's UserID
// to the caller before mutating.
type Storage interface {
	// Users
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(u *models.User) error
	ListUsers() ([]models.User, error)
	UpdateUser(id string, patch models.UserPatch) (*models.User, error)
	DeleteUser(id string) error

	// Workouts, ordered by date descending
	ListWorkoutsByUser(userID string) ([]models.Workout, error)
	CreateWorkout(w *models.Workout) error
	GetWorkout(id string) (*models.Workout, error)
	DeleteWorkout(id string) error
	CountWorkoutsByUser(userID string) (int64, error)

	// Meals, ordered by date descending
	ListMealsByUser(userID string) ([]models.Meal, error)
	CreateMeal(m *models.Meal) error
	GetMeal(id string) (*models.Meal, error)
	DeleteMeal(id string) error
	CountMealsByUser(userID string) (int64, error)

	// Trainers
	ListTrainers() ([]models.Trainer, error)
	SearchTrainers(query string) ([]models.Trainer, error)
	GetTrainer(id string) (*models.Trainer, error)
	CreateTrainer(t *models.Trainer) error
	UpdateTrainer(id string, patch models.TrainerPatch) (*models.Trainer, error)
	DeleteTrainer(id string) error

	// Gyms
	ListGyms() ([]models.Gym, error)
	SearchGyms(query string) ([]models.Gym, error)
	GetGym(id string) (*models.Gym, error)
	CreateGym(g *models.Gym) error
	UpdateGym(id string, patch models.GymPatch) (*models.Gym, error)
	DeleteGym(id string) error

	// Bookings, ordered by date descending
	ListBookingsByUser(userID string) ([]models.Booking, error)
	CreateBooking(b *models.Booking) error
	GetBooking(id string) (*models.Booking, error)
	ConfirmBooking(id string) (*models.Booking, error)
	// CancelBooking is idempotent on an already-cancelled booking.
	CancelBooking(id string) (*models.Booking, error)
	ListConfirmedBookingsBetween(from, to time.Time) ([]models.Booking, error)

	// Challenges
	ListActiveChallenges() ([]models.Challenge, error)
	GetChallenge(id string) (*models.Challenge, error)
	CreateChallenge(c *models.Challenge) error
	JoinChallenge(userID, challengeID string) (*models.UserChallenge, error)
	ListUserChallenges(userID string) ([]models.UserChallenge, error)
	UpdateChallengeProgress(userID, challengeID string, progress int) (*models.UserChallenge, error)

	// Achievements
	ListAchievements(userID string) ([]models.Achievement, error)
	HasAchievement(userID, achievementType string) (bool, error)
	CreateAchievement(a *models.Achievement) error

	// Stats aggregates entity counts for the admin dashboard.
	Stats() (*models.Stats, error)
}
