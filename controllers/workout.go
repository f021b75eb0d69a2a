package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gitmusaddique/FitnessTracker-sub000/media"
	"github.com/gitmusaddique/FitnessTracker-sub000/models"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

type WorkoutController struct {
	Store storage.Storage
	Media media.Uploader
}

// List returns the caller's workouts, newest first.
func (wc *WorkoutController) List(c *fiber.Ctx) error {
	workouts, err := wc.Store.ListWorkoutsByUser(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch workouts",
			Error:   err.Error(),
		})
	}
	return c.JSON(workouts)
}

// Create logs a workout for the caller. Accepts JSON or a multipart
// form with an optional "photo" part.
func (wc *WorkoutController) Create(c *fiber.Ctx) error {
	type createInput struct {
		Type     string  `json:"type" form:"type"`
		Duration int     `json:"duration" form:"duration"`
		Calories int     `json:"calories" form:"calories"`
		Distance float64 `json:"distance" form:"distance"`
		Notes    string  `json:"notes" form:"notes"`
	}

	input := new(createInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse request body")
	}

	workout := &models.Workout{
		UserID:   callerID(c),
		Type:     input.Type,
		Duration: input.Duration,
		Calories: input.Calories,
		Distance: input.Distance,
		Notes:    input.Notes,
	}
	if err := workout.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if file, err := c.FormFile("photo"); err == nil {
		url, err := wc.Media.Upload(file, uuid.NewString())
		if err != nil {
			log.Printf("Error uploading workout photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to upload photo",
				Error:   err.Error(),
			})
		}
		workout.PhotoURL = url
	}

	if err := wc.Store.CreateWorkout(workout); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create workout",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// Delete removes one of the caller's workouts. A workout owned by
// someone else is reported as not found, never as forbidden.
func (wc *WorkoutController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	workout, err := wc.Store.GetWorkout(id)
	if err != nil {
		return notFoundOr(c, err, "Workout not found")
	}
	if workout.UserID != callerID(c) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Workout not found",
		})
	}
	if err := wc.Store.DeleteWorkout(id); err != nil {
		return notFoundOr(c, err, "Workout not found")
	}
	return c.JSON(fiber.Map{"message": "Workout deleted"})
}
