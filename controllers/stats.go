package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

type StatsController struct {
	Store storage.Storage
}

// Me aggregates the caller's activity for the dashboard. Reads only.
func (sc *StatsController) Me(c *fiber.Ctx) error {
	userID := callerID(c)

	workouts, err := sc.Store.ListWorkoutsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch workouts",
			Error:   err.Error(),
		})
	}
	meals, err := sc.Store.ListMealsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch meals",
			Error:   err.Error(),
		})
	}
	bookings, err := sc.Store.ListBookingsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	var burned, consumed int
	var minutes int
	var distance float64
	for _, w := range workouts {
		burned += w.Calories
		minutes += w.Duration
		distance += w.Distance
	}
	for _, m := range meals {
		consumed += m.Calories
	}

	return c.JSON(fiber.Map{
		"workouts":          len(workouts),
		"meals":             len(meals),
		"bookings":          len(bookings),
		"calories_burned":   burned,
		"calories_consumed": consumed,
		"workout_minutes":   minutes,
		"distance_km":       distance,
	})
}
