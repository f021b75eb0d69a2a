package storage

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gitmusaddique/FitnessTracker-sub000/models"
)

// GormStorage is the embedded-SQL backend. All the interesting
// constraints (email uniqueness, ordering) are delegated to the engine.
type GormStorage struct {
	db *gorm.DB
}

var _ Storage = (*GormStorage)(nil)

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

// Users

func (s *GormStorage) GetUser(id string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStorage) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "LOWER(email) = ?", strings.ToLower(email)).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStorage) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error)
}

func (s *GormStorage) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStorage) UpdateUser(id string, patch models.UserPatch) (*models.User, error) {
	u, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*u)
	if err := s.db.Save(&updated).Error; err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

func (s *GormStorage) DeleteUser(id string) error {
	res := s.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Workouts

func (s *GormStorage) ListWorkoutsByUser(userID string) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *GormStorage) CreateWorkout(w *models.Workout) error {
	w.Date = time.Now()
	return s.db.Create(w).Error
}

func (s *GormStorage) GetWorkout(id string) (*models.Workout, error) {
	var w models.Workout
	if err := s.db.First(&w, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &w, nil
}

func (s *GormStorage) DeleteWorkout(id string) error {
	res := s.db.Delete(&models.Workout{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) CountWorkoutsByUser(userID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Workout{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// Meals

func (s *GormStorage) ListMealsByUser(userID string) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (s *GormStorage) CreateMeal(m *models.Meal) error {
	m.Date = time.Now()
	return s.db.Create(m).Error
}

func (s *GormStorage) GetMeal(id string) (*models.Meal, error) {
	var m models.Meal
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *GormStorage) DeleteMeal(id string) error {
	res := s.db.Delete(&models.Meal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) CountMealsByUser(userID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Meal{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// Trainers

func (s *GormStorage) ListTrainers() ([]models.Trainer, error) {
	var trainers []models.Trainer
	if err := s.db.Order("name ASC").Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

func (s *GormStorage) SearchTrainers(query string) ([]models.Trainer, error) {
	q := "%" + strings.ToLower(query) + "%"
	var trainers []models.Trainer
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(specialty) LIKE ? OR LOWER(location) LIKE ?", q, q, q).
		Order("name ASC").
		Find(&trainers).Error
	if err != nil {
		return nil, err
	}
	return trainers, nil
}

func (s *GormStorage) GetTrainer(id string) (*models.Trainer, error) {
	var t models.Trainer
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *GormStorage) CreateTrainer(t *models.Trainer) error {
	return s.db.Create(t).Error
}

func (s *GormStorage) UpdateTrainer(id string, patch models.TrainerPatch) (*models.Trainer, error) {
	t, err := s.GetTrainer(id)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*t)
	if err := s.db.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *GormStorage) DeleteTrainer(id string) error {
	res := s.db.Delete(&models.Trainer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Gyms

func (s *GormStorage) ListGyms() ([]models.Gym, error) {
	var gyms []models.Gym
	if err := s.db.Order("name ASC").Find(&gyms).Error; err != nil {
		return nil, err
	}
	return gyms, nil
}

func (s *GormStorage) SearchGyms(query string) ([]models.Gym, error) {
	q := "%" + strings.ToLower(query) + "%"
	var gyms []models.Gym
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(address) LIKE ?", q, q, q).
		Order("name ASC").
		Find(&gyms).Error
	if err != nil {
		return nil, err
	}
	return gyms, nil
}

func (s *GormStorage) GetGym(id string) (*models.Gym, error) {
	var g models.Gym
	if err := s.db.First(&g, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (s *GormStorage) CreateGym(g *models.Gym) error {
	return s.db.Create(g).Error
}

func (s *GormStorage) UpdateGym(id string, patch models.GymPatch) (*models.Gym, error) {
	g, err := s.GetGym(id)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*g)
	if err := s.db.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *GormStorage) DeleteGym(id string) error {
	res := s.db.Delete(&models.Gym{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Bookings

func (s *GormStorage) ListBookingsByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStorage) CreateBooking(b *models.Booking) error {
	return s.db.Create(b).Error
}

func (s *GormStorage) GetBooking(id string) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (s *GormStorage) ConfirmBooking(id string) (*models.Booking, error) {
	b, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}
	if err := b.Transition(models.BookingConfirmed); err != nil {
		return nil, err
	}
	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (s *GormStorage) CancelBooking(id string) (*models.Booking, error) {
	b, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingCancelled {
		return b, nil
	}
	if err := b.Transition(models.BookingCancelled); err != nil {
		return nil, err
	}
	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (s *GormStorage) ListConfirmedBookingsBetween(from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Where("status = ? AND date BETWEEN ? AND ?", models.BookingConfirmed, from, to).
		Order("date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Challenges

func (s *GormStorage) ListActiveChallenges() ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := s.db.Where("is_active = ?", true).Order("title ASC").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (s *GormStorage) GetChallenge(id string) (*models.Challenge, error) {
	var c models.Challenge
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *GormStorage) CreateChallenge(c *models.Challenge) error {
	return s.db.Create(c).Error
}

func (s *GormStorage) JoinChallenge(userID, challengeID string) (*models.UserChallenge, error) {
	if _, err := s.GetChallenge(challengeID); err != nil {
		return nil, err
	}
	var existing models.UserChallenge
	err := s.db.First(&existing, "user_id = ? AND challenge_id = ?", userID, challengeID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	uc := models.UserChallenge{UserID: userID, ChallengeID: challengeID, JoinedAt: time.Now()}
	if err := s.db.Create(&uc).Error; err != nil {
		return nil, err
	}
	return &uc, nil
}

func (s *GormStorage) ListUserChallenges(userID string) ([]models.UserChallenge, error) {
	var ucs []models.UserChallenge
	if err := s.db.Where("user_id = ?", userID).Order("joined_at DESC").Find(&ucs).Error; err != nil {
		return nil, err
	}
	return ucs, nil
}

func (s *GormStorage) UpdateChallengeProgress(userID, challengeID string, progress int) (*models.UserChallenge, error) {
	challenge, err := s.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	var uc models.UserChallenge
	if err := s.db.First(&uc, "user_id = ? AND challenge_id = ?", userID, challengeID).Error; err != nil {
		return nil, translate(err)
	}
	uc.Progress = progress
	if !uc.IsCompleted && progress >= challenge.Target {
		uc.IsCompleted = true
		now := time.Now()
		uc.CompletedAt = &now
	}
	if err := s.db.Save(&uc).Error; err != nil {
		return nil, err
	}
	return &uc, nil
}

// Achievements

func (s *GormStorage) ListAchievements(userID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := s.db.Where("user_id = ?", userID).Order("unlocked_at DESC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *GormStorage) HasAchievement(userID, achievementType string) (bool, error) {
	var n int64
	err := s.db.Model(&models.Achievement{}).
		Where("user_id = ? AND type = ?", userID, achievementType).
		Count(&n).Error
	return n > 0, err
}

func (s *GormStorage) CreateAchievement(a *models.Achievement) error {
	return s.db.Create(a).Error
}

// Stats

func (s *GormStorage) Stats() (*models.Stats, error) {
	stats := &models.Stats{}
	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Workout{}, &stats.Workouts},
		{&models.Meal{}, &stats.Meals},
		{&models.Trainer{}, &stats.Trainers},
		{&models.Gym{}, &stats.Gyms},
		{&models.Booking{}, &stats.Bookings},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	byStatus := []struct {
		status models.BookingStatus
		dest   *int64
	}{
		{models.BookingPending, &stats.PendingBookings},
		{models.BookingConfirmed, &stats.ConfirmedBookings},
		{models.BookingCancelled, &stats.CancelledBookings},
	}
	for _, c := range byStatus {
		err := s.db.Model(&models.Booking{}).Where("status = ?", c.status).Count(c.dest).Error
		if err != nil {
			return nil, err
		}
	}
	return stats, nil
}
