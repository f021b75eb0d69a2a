package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmusaddique/FitnessTracker-sub000/auth"
	"github.com/gitmusaddique/FitnessTracker-sub000/media"
	"github.com/gitmusaddique/FitnessTracker-sub000/models"
	"github.com/gitmusaddique/FitnessTracker-sub000/routes"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
)

func setup(t *testing.T) (*fiber.App, storage.Storage, *auth.Manager) {
	t.Helper()
	store := storage.NewMemStorage()
	manager := auth.NewManager("user-secret", "admin-secret")
	uploader, err := media.NewDiskUploader(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	routes.Setup(app, store, manager, uploader)
	return app, store, manager
}

func request(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerUser creates an account via the API and returns its token and id.
func registerUser(t *testing.T, app *fiber.App, email string) (token, id string) {
	t.Helper()
	resp := request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Test User",
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	require.NotEmpty(t, body.User.ID)
	return body.Token, body.User.ID
}

func TestRegisterLoginFlow(t *testing.T) {
	app, _, _ := setup(t)

	_, registeredID := registerUser(t, app, "a@x.com")

	// Login with the same credentials yields the same user id.
	resp := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "a@x.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, resp, &login)
	assert.Equal(t, registeredID, login.User.ID)
	assert.NotEmpty(t, login.Token)

	// Bad credentials.
	resp = request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "a@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Duplicate email is a conflict, not a validation error.
	resp = request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Other",
		"email":    "a@x.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Missing fields.
	resp = request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "b@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app, _, _ := setup(t)
	token, id := registerUser(t, app, "me@x.com")

	resp := request(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user models.User
	decode(t, resp, &user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "me@x.com", user.Email)
}

func TestRefresh(t *testing.T) {
	app, _, _ := setup(t)
	token, _ := registerUser(t, app, "r@x.com")

	resp := request(t, app, http.MethodPost, "/api/auth/refresh", "", fiber.Map{"token": token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	assert.NotEmpty(t, body.Token)

	resp = request(t, app, http.MethodPost, "/api/auth/refresh", "", fiber.Map{"token": "garbage"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWorkoutLifecycle(t *testing.T) {
	app, _, _ := setup(t)
	token, _ := registerUser(t, app, "w@x.com")
	otherToken, _ := registerUser(t, app, "other@x.com")

	// Invalid payload.
	resp := request(t, app, http.MethodPost, "/api/workouts", token, fiber.Map{
		"type": "run", "duration": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var first models.Workout
	resp = request(t, app, http.MethodPost, "/api/workouts", token, fiber.Map{
		"type": "run", "duration": 30, "calories": 250, "distance": 5.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &first)
	time.Sleep(2 * time.Millisecond)

	var second models.Workout
	resp = request(t, app, http.MethodPost, "/api/workouts", token, fiber.Map{
		"type": "swim", "duration": 45,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &second)

	// Newest first.
	resp = request(t, app, http.MethodGet, "/api/workouts", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var workouts []models.Workout
	decode(t, resp, &workouts)
	require.Len(t, workouts, 2)
	assert.Equal(t, second.ID, workouts[0].ID)

	// Someone else's workout reads as not found.
	resp = request(t, app, http.MethodDelete, "/api/workouts/"+first.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = request(t, app, http.MethodDelete, "/api/workouts/"+first.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodDelete, "/api/workouts/"+first.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWorkoutMultipartWithPhoto(t *testing.T) {
	app, _, _ := setup(t)
	token, _ := registerUser(t, app, "photo@x.com")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("type", "run"))
	require.NoError(t, w.WriteField("duration", "30"))
	part, err := w.CreateFormFile("photo", "run.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/workouts", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var workout models.Workout
	decode(t, resp, &workout)
	assert.Equal(t, "run", workout.Type)
	assert.NotEmpty(t, workout.PhotoURL)
}

func TestMealLifecycle(t *testing.T) {
	app, _, _ := setup(t)
	token, _ := registerUser(t, app, "meal@x.com")

	resp := request(t, app, http.MethodPost, "/api/meals", token, fiber.Map{
		"name": "oats", "calories": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var meal models.Meal
	resp = request(t, app, http.MethodPost, "/api/meals", token, fiber.Map{
		"name": "oats", "meal_type": "breakfast", "calories": 350, "protein": 12.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &meal)
	assert.Equal(t, 350, meal.Calories)

	resp = request(t, app, http.MethodGet, "/api/meals", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var meals []models.Meal
	decode(t, resp, &meals)
	require.Len(t, meals, 1)

	resp = request(t, app, http.MethodDelete, "/api/meals/"+meal.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodDelete, "/api/meals/"+meal.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTrainerDiscovery(t *testing.T) {
	app, store, _ := setup(t)
	mike := &models.Trainer{Name: "Mike Johnson", Specialty: "Strength", Location: "Brooklyn"}
	require.NoError(t, store.CreateTrainer(mike))
	require.NoError(t, store.CreateTrainer(&models.Trainer{Name: "Anna Lee", Specialty: "Yoga"}))

	// Public, no token needed.
	resp := request(t, app, http.MethodGet, "/api/trainers", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var trainers []models.Trainer
	decode(t, resp, &trainers)
	assert.Len(t, trainers, 2)

	resp = request(t, app, http.MethodGet, "/api/trainers?search=mike", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &trainers)
	require.Len(t, trainers, 1)
	assert.Equal(t, "Mike Johnson", trainers[0].Name)

	resp = request(t, app, http.MethodGet, "/api/trainers/"+mike.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodGet, "/api/trainers/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGymDiscovery(t *testing.T) {
	app, store, _ := setup(t)
	require.NoError(t, store.CreateGym(&models.Gym{Name: "Iron Temple", Location: "Downtown"}))

	resp := request(t, app, http.MethodGet, "/api/gyms?search=IRON", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var gyms []models.Gym
	decode(t, resp, &gyms)
	require.Len(t, gyms, 1)
	assert.Equal(t, "Iron Temple", gyms[0].Name)
}

func TestBookingFlow(t *testing.T) {
	app, store, _ := setup(t)
	token, _ := registerUser(t, app, "b@x.com")
	otherToken, _ := registerUser(t, app, "b2@x.com")

	trainer := &models.Trainer{Name: "Coach"}
	require.NoError(t, store.CreateTrainer(trainer))

	// Unknown trainer.
	resp := request(t, app, http.MethodPost, "/api/bookings", token, fiber.Map{
		"trainer_id": "missing",
		"date":       time.Now().Add(24 * time.Hour),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var booking models.Booking
	resp = request(t, app, http.MethodPost, "/api/bookings", token, fiber.Map{
		"trainer_id": trainer.ID,
		"date":       time.Now().Add(24 * time.Hour),
		"notes":      "leg day",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &booking)
	assert.Equal(t, models.BookingPending, booking.Status)

	// Another user can't cancel it, and can't learn it exists.
	resp = request(t, app, http.MethodPatch, "/api/bookings/"+booking.ID+"/cancel", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Cancel twice: both succeed, final state cancelled.
	for i := 0; i < 2; i++ {
		resp = request(t, app, http.MethodPatch, "/api/bookings/"+booking.ID+"/cancel", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var cancelled models.Booking
		decode(t, resp, &cancelled)
		assert.Equal(t, models.BookingCancelled, cancelled.Status)
	}
}

func TestChallengeFlow(t *testing.T) {
	app, store, _ := setup(t)
	token, _ := registerUser(t, app, "c@x.com")

	ch := &models.Challenge{Title: "Run 3 times", Type: "workout", Target: 3, IsActive: true}
	require.NoError(t, store.CreateChallenge(ch))

	resp := request(t, app, http.MethodGet, "/api/challenges", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var challenges []models.Challenge
	decode(t, resp, &challenges)
	require.Len(t, challenges, 1)

	var uc models.UserChallenge
	resp = request(t, app, http.MethodPost, "/api/challenges/join", token, fiber.Map{
		"challenge_id": ch.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &uc)
	assert.Equal(t, 0, uc.Progress)

	resp = request(t, app, http.MethodPatch, "/api/challenges/"+ch.ID+"/progress", token, fiber.Map{
		"progress": 3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var done models.UserChallenge
	decode(t, resp, &done)
	assert.True(t, done.IsCompleted)
	assert.NotNil(t, done.CompletedAt)

	resp = request(t, app, http.MethodGet, "/api/challenges/user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mine []models.UserChallenge
	decode(t, resp, &mine)
	require.Len(t, mine, 1)
}

func TestAchievementScenario(t *testing.T) {
	app, _, _ := setup(t)
	token, _ := registerUser(t, app, "ach@x.com")

	for i := 0; i < 10; i++ {
		resp := request(t, app, http.MethodPost, "/api/workouts", token, fiber.Map{
			"type": "run", "duration": 20,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := request(t, app, http.MethodPost, "/api/achievements/check", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var unlocked []models.Achievement
	decode(t, resp, &unlocked)

	types := map[string]int{}
	for _, a := range unlocked {
		types[a.Type]++
	}
	assert.Equal(t, 1, types["first_workout"])
	assert.Equal(t, 1, types["workout_warrior"])
	assert.Zero(t, types["workout_champion"])
	assert.Zero(t, types["nutrition_start"])

	// Second pass with unchanged counts unlocks nothing.
	resp = request(t, app, http.MethodPost, "/api/achievements/check", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var again []models.Achievement
	decode(t, resp, &again)
	assert.Empty(t, again)

	resp = request(t, app, http.MethodGet, "/api/achievements", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []models.Achievement
	decode(t, resp, &all)
	assert.Len(t, all, 2)
}

func TestUserStats(t *testing.T) {
	app, _, _ := setup(t)
	token, _ := registerUser(t, app, "stats@x.com")

	resp := request(t, app, http.MethodPost, "/api/workouts", token, fiber.Map{
		"type": "run", "duration": 30, "calories": 250, "distance": 5.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = request(t, app, http.MethodPost, "/api/meals", token, fiber.Map{
		"name": "oats", "calories": 350,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		Workouts         int     `json:"workouts"`
		Meals            int     `json:"meals"`
		CaloriesBurned   int     `json:"calories_burned"`
		CaloriesConsumed int     `json:"calories_consumed"`
		WorkoutMinutes   int     `json:"workout_minutes"`
		DistanceKM       float64 `json:"distance_km"`
	}
	decode(t, resp, &stats)
	assert.Equal(t, 1, stats.Workouts)
	assert.Equal(t, 1, stats.Meals)
	assert.Equal(t, 250, stats.CaloriesBurned)
	assert.Equal(t, 350, stats.CaloriesConsumed)
	assert.Equal(t, 30, stats.WorkoutMinutes)
	assert.Equal(t, 5.0, stats.DistanceKM)
}
