package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmusaddique/FitnessTracker-sub000/auth"
	"github.com/gitmusaddique/FitnessTracker-sub000/models"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
)

// seedAdmin creates an admin account directly in storage and logs in
// through the admin surface, returning the admin token.
func seedAdmin(t *testing.T, app *fiber.App, store storage.Storage) string {
	t.Helper()
	hash, err := auth.HashPassword("adminpass")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(&models.User{
		Name:     "Admin",
		Email:    "admin@x.com",
		Password: hash,
		Role:     models.RoleAdmin,
	}))

	resp := request(t, app, http.MethodPost, "/admin/api/auth/login", "", fiber.Map{
		"email":    "admin@x.com",
		"password": "adminpass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	app, _, _ := setup(t)
	registerUser(t, app, "pleb@x.com")

	resp := request(t, app, http.MethodPost, "/admin/api/auth/login", "", fiber.Map{
		"email":    "pleb@x.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/admin/api/auth/login", "", fiber.Map{
		"email":    "pleb@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRejectUserTokens(t *testing.T) {
	app, store, _ := setup(t)
	seedAdmin(t, app, store)
	userToken, _ := registerUser(t, app, "u@x.com")

	// A valid end-user token is authenticated but not allowed: 403,
	// never 401.
	for _, path := range []string{"/admin/api/stats", "/admin/api/users", "/admin/api/trainers"} {
		resp := request(t, app, http.MethodGet, path, userToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}

	// No token or garbage is 401.
	resp := request(t, app, http.MethodGet, "/admin/api/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = request(t, app, http.MethodGet, "/admin/api/stats", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminTrainerCRUD(t *testing.T) {
	app, store, _ := setup(t)
	adminToken := seedAdmin(t, app, store)

	var trainer models.Trainer
	resp := request(t, app, http.MethodPost, "/admin/api/trainers", adminToken, fiber.Map{
		"name":      "Mike Johnson",
		"specialty": "Strength",
		"price":     7500,
		"rating":    4.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &trainer)
	require.NotEmpty(t, trainer.ID)

	// Patch a subset of fields; the rest stay put.
	resp = request(t, app, http.MethodPatch, "/admin/api/trainers/"+trainer.ID, adminToken, fiber.Map{
		"is_verified": true,
		"price":       8000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var patched models.Trainer
	decode(t, resp, &patched)
	assert.True(t, patched.IsVerified)
	assert.Equal(t, 8000, patched.Price)
	assert.Equal(t, "Mike Johnson", patched.Name)
	assert.Equal(t, "Strength", patched.Specialty)

	// Validation failures.
	resp = request(t, app, http.MethodPost, "/admin/api/trainers", adminToken, fiber.Map{
		"name": "", "price": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = request(t, app, http.MethodPatch, "/admin/api/trainers/"+trainer.ID, adminToken, fiber.Map{
		"rating": 6.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = request(t, app, http.MethodDelete, "/admin/api/trainers/"+trainer.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodGet, "/admin/api/trainers/"+trainer.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminGymCRUD(t *testing.T) {
	app, store, _ := setup(t)
	adminToken := seedAdmin(t, app, store)

	var gym models.Gym
	resp := request(t, app, http.MethodPost, "/admin/api/gyms", adminToken, fiber.Map{
		"name":     "Iron Temple",
		"location": "Downtown",
		"price":    4900,
		"has_pool": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &gym)

	resp = request(t, app, http.MethodPatch, "/admin/api/gyms/"+gym.ID, adminToken, fiber.Map{
		"has_sauna": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var patched models.Gym
	decode(t, resp, &patched)
	assert.True(t, patched.HasPool)
	assert.True(t, patched.HasSauna)
	assert.Equal(t, "Iron Temple", patched.Name)
}

func TestAdminUserManagement(t *testing.T) {
	app, store, _ := setup(t)
	adminToken := seedAdmin(t, app, store)
	_, userID := registerUser(t, app, "managed@x.com")

	resp := request(t, app, http.MethodGet, "/admin/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []models.User
	decode(t, resp, &users)
	assert.Len(t, users, 2) // admin + registered user

	resp = request(t, app, http.MethodPatch, "/admin/api/users/"+userID, adminToken, fiber.Map{
		"role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = request(t, app, http.MethodPatch, "/admin/api/users/"+userID, adminToken, fiber.Map{
		"name": "Renamed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var patched models.User
	decode(t, resp, &patched)
	assert.Equal(t, "Renamed", patched.Name)

	resp = request(t, app, http.MethodDelete, "/admin/api/users/"+userID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodGet, "/admin/api/users/"+userID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminConfirmBooking(t *testing.T) {
	app, store, _ := setup(t)
	adminToken := seedAdmin(t, app, store)
	userToken, _ := registerUser(t, app, "booker@x.com")

	trainer := &models.Trainer{Name: "Coach"}
	require.NoError(t, store.CreateTrainer(trainer))

	var booking models.Booking
	resp := request(t, app, http.MethodPost, "/api/bookings", userToken, fiber.Map{
		"trainer_id": trainer.ID,
		"date":       time.Now().Add(24 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &booking)

	resp = request(t, app, http.MethodPatch, "/admin/api/bookings/"+booking.ID+"/confirm", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var confirmed models.Booking
	decode(t, resp, &confirmed)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)

	// Confirming a second time is an invalid transition.
	resp = request(t, app, http.MethodPatch, "/admin/api/bookings/"+booking.ID+"/confirm", adminToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = request(t, app, http.MethodPatch, "/admin/api/bookings/missing/confirm", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminStats(t *testing.T) {
	app, store, _ := setup(t)
	adminToken := seedAdmin(t, app, store)
	userToken, _ := registerUser(t, app, "s@x.com")

	resp := request(t, app, http.MethodPost, "/api/workouts", userToken, fiber.Map{
		"type": "run", "duration": 30,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/admin/api/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats models.Stats
	decode(t, resp, &stats)
	assert.EqualValues(t, 2, stats.Users)
	assert.EqualValues(t, 1, stats.Workouts)
}
