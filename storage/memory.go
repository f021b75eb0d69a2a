package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gitmusaddique/FitnessTracker-sub000/models"
)

// MemStorage keeps every entity in process-local maps. It exists for
// tests and single-instance dev runs; state does not survive a restart
// and cannot be shared between processes, so any multi-instance
// deployment needs the SQL backend.
type MemStorage struct {
	mu sync.RWMutex

	users          map[string]models.User
	emails         map[string]string // email -> user id
	workouts       map[string]models.Workout
	meals          map[string]models.Meal
	trainers       map[string]models.Trainer
	gyms           map[string]models.Gym
	bookings       map[string]models.Booking
	challenges     map[string]models.Challenge
	userChallenges map[string]models.UserChallenge
	achievements   map[string]models.Achievement
}

var _ Storage = (*MemStorage)(nil)

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:          make(map[string]models.User),
		emails:         make(map[string]string),
		workouts:       make(map[string]models.Workout),
		meals:          make(map[string]models.Meal),
		trainers:       make(map[string]models.Trainer),
		gyms:           make(map[string]models.Gym),
		bookings:       make(map[string]models.Booking),
		challenges:     make(map[string]models.Challenge),
		userChallenges: make(map[string]models.UserChallenge),
		achievements:   make(map[string]models.Achievement),
	}
}

// Users

func (s *MemStorage) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStorage) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.users[id]
	return &u, nil
}

func (s *MemStorage) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, exists := s.emails[key]; exists {
		return ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = *u
	s.emails[key] = u.ID
	return nil
}

func (s *MemStorage) ListUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemStorage) UpdateUser(id string, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil && !strings.EqualFold(*patch.Email, u.Email) {
		key := strings.ToLower(*patch.Email)
		if _, exists := s.emails[key]; exists {
			return nil, ErrDuplicateEmail
		}
		delete(s.emails, strings.ToLower(u.Email))
		s.emails[key] = id
	}
	updated := patch.Apply(u)
	updated.UpdatedAt = time.Now()
	s.users[id] = updated
	return &updated, nil
}

func (s *MemStorage) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.emails, strings.ToLower(u.Email))
	delete(s.users, id)
	return nil
}

// Workouts

func (s *MemStorage) ListWorkoutsByUser(userID string) ([]models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Workout{}
	for _, w := range s.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *MemStorage) CreateWorkout(w *models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	// The server owns the log timestamp; client-supplied dates are ignored.
	w.Date = time.Now()
	w.CreatedAt = w.Date
	s.workouts[w.ID] = *w
	return nil
}

func (s *MemStorage) GetWorkout(id string) (*models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workouts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &w, nil
}

func (s *MemStorage) DeleteWorkout(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workouts[id]; !ok {
		return ErrNotFound
	}
	delete(s.workouts, id)
	return nil
}

func (s *MemStorage) CountWorkoutsByUser(userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, w := range s.workouts {
		if w.UserID == userID {
			n++
		}
	}
	return n, nil
}

// Meals

func (s *MemStorage) ListMealsByUser(userID string) ([]models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Meal{}
	for _, m := range s.meals {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *MemStorage) CreateMeal(m *models.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.Date = time.Now()
	m.CreatedAt = m.Date
	s.meals[m.ID] = *m
	return nil
}

func (s *MemStorage) GetMeal(id string) (*models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemStorage) DeleteMeal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meals[id]; !ok {
		return ErrNotFound
	}
	delete(s.meals, id)
	return nil
}

func (s *MemStorage) CountMealsByUser(userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, m := range s.meals {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

// Trainers

func (s *MemStorage) ListTrainers() ([]models.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Trainer, 0, len(s.trainers))
	for _, t := range s.trainers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemStorage) SearchTrainers(query string) ([]models.Trainer, error) {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Trainer{}
	for _, t := range s.trainers {
		if containsFold(t.Name, q) || containsFold(t.Specialty, q) || containsFold(t.Location, q) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemStorage) GetTrainer(id string) (*models.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trainers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemStorage) CreateTrainer(t *models.Trainer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.trainers[t.ID] = *t
	return nil
}

func (s *MemStorage) UpdateTrainer(id string, patch models.TrainerPatch) (*models.Trainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trainers[id]
	if !ok {
		return nil, ErrNotFound
	}
	updated := patch.Apply(t)
	updated.UpdatedAt = time.Now()
	s.trainers[id] = updated
	return &updated, nil
}

func (s *MemStorage) DeleteTrainer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainers[id]; !ok {
		return ErrNotFound
	}
	delete(s.trainers, id)
	return nil
}

// Gyms

func (s *MemStorage) ListGyms() ([]models.Gym, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Gym, 0, len(s.gyms))
	for _, g := range s.gyms {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemStorage) SearchGyms(query string) ([]models.Gym, error) {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Gym{}
	for _, g := range s.gyms {
		if containsFold(g.Name, q) || containsFold(g.Location, q) || containsFold(g.Address, q) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemStorage) GetGym(id string) (*models.Gym, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gyms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (s *MemStorage) CreateGym(g *models.Gym) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	s.gyms[g.ID] = *g
	return nil
}

func (s *MemStorage) UpdateGym(id string, patch models.GymPatch) (*models.Gym, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gyms[id]
	if !ok {
		return nil, ErrNotFound
	}
	updated := patch.Apply(g)
	updated.UpdatedAt = time.Now()
	s.gyms[id] = updated
	return &updated, nil
}

func (s *MemStorage) DeleteGym(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.gyms[id]; !ok {
		return ErrNotFound
	}
	delete(s.gyms, id)
	return nil
}

// Bookings

func (s *MemStorage) ListBookingsByUser(userID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *MemStorage) CreateBooking(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	s.bookings[b.ID] = *b
	return nil
}

func (s *MemStorage) GetBooking(id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *MemStorage) ConfirmBooking(id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := b.Transition(models.BookingConfirmed); err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now()
	s.bookings[id] = b
	return &b, nil
}

func (s *MemStorage) CancelBooking(id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	// Terminal state is idempotent: cancelling twice just confirms it.
	if b.Status != models.BookingCancelled {
		if err := b.Transition(models.BookingCancelled); err != nil {
			return nil, err
		}
		b.UpdatedAt = time.Now()
		s.bookings[id] = b
	}
	return &b, nil
}

func (s *MemStorage) ListConfirmedBookingsBetween(from, to time.Time) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.Status == models.BookingConfirmed && !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// Challenges

func (s *MemStorage) ListActiveChallenges() ([]models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Challenge{}
	for _, c := range s.challenges {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *MemStorage) GetChallenge(id string) (*models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.challenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemStorage) CreateChallenge(c *models.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	s.challenges[c.ID] = *c
	return nil
}

func (s *MemStorage) JoinChallenge(userID, challengeID string) (*models.UserChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.challenges[challengeID]; !ok {
		return nil, ErrNotFound
	}
	// Joining twice returns the existing membership.
	for _, uc := range s.userChallenges {
		if uc.UserID == userID && uc.ChallengeID == challengeID {
			return &uc, nil
		}
	}
	uc := models.UserChallenge{
		ID:          uuid.NewString(),
		UserID:      userID,
		ChallengeID: challengeID,
		JoinedAt:    time.Now(),
	}
	s.userChallenges[uc.ID] = uc
	return &uc, nil
}

func (s *MemStorage) ListUserChallenges(userID string) ([]models.UserChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.UserChallenge{}
	for _, uc := range s.userChallenges {
		if uc.UserID == userID {
			out = append(out, uc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].JoinedAt.After(out[j].JoinedAt)
	})
	return out, nil
}

func (s *MemStorage) UpdateChallengeProgress(userID, challengeID string, progress int) (*models.UserChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[challengeID]
	if !ok {
		return nil, ErrNotFound
	}
	for id, uc := range s.userChallenges {
		if uc.UserID != userID || uc.ChallengeID != challengeID {
			continue
		}
		uc.Progress = progress
		if !uc.IsCompleted && progress >= challenge.Target {
			uc.IsCompleted = true
			now := time.Now()
			uc.CompletedAt = &now
		}
		s.userChallenges[id] = uc
		return &uc, nil
	}
	return nil, ErrNotFound
}

// Achievements

func (s *MemStorage) ListAchievements(userID string) ([]models.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Achievement{}
	for _, a := range s.achievements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UnlockedAt.After(out[j].UnlockedAt)
	})
	return out, nil
}

func (s *MemStorage) HasAchievement(userID, achievementType string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.achievements {
		if a.UserID == userID && a.Type == achievementType {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemStorage) CreateAchievement(a *models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.UnlockedAt.IsZero() {
		a.UnlockedAt = time.Now()
	}
	s.achievements[a.ID] = *a
	return nil
}

// Stats

func (s *MemStorage) Stats() (*models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &models.Stats{
		Users:    int64(len(s.users)),
		Workouts: int64(len(s.workouts)),
		Meals:    int64(len(s.meals)),
		Trainers: int64(len(s.trainers)),
		Gyms:     int64(len(s.gyms)),
		Bookings: int64(len(s.bookings)),
	}
	for _, b := range s.bookings {
		switch b.Status {
		case models.BookingPending:
			stats.PendingBookings++
		case models.BookingConfirmed:
			stats.ConfirmedBookings++
		case models.BookingCancelled:
			stats.CancelledBookings++
		}
	}
	return stats, nil
}

func containsFold(field, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(field), loweredQuery)
}
