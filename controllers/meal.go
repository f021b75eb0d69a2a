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

type MealController struct {
	Store storage.Storage
	Media media.Uploader
}

// List returns the caller's meals, newest first.
func (mc *MealController) List(c *fiber.Ctx) error {
	meals, err := mc.Store.ListMealsByUser(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch meals",
			Error:   err.Error(),
		})
	}
	return c.JSON(meals)
}

// Create logs a meal for the caller, same multipart pattern as workouts.
func (mc *MealController) Create(c *fiber.Ctx) error {
	type createInput struct {
		Name     string  `json:"name" form:"name"`
		MealType string  `json:"meal_type" form:"meal_type"`
		Calories int     `json:"calories" form:"calories"`
		Protein  float64 `json:"protein" form:"protein"`
		Carbs    float64 `json:"carbs" form:"carbs"`
		Fat      float64 `json:"fat" form:"fat"`
		Fiber    float64 `json:"fiber" form:"fiber"`
		Sugar    float64 `json:"sugar" form:"sugar"`
		Notes    string  `json:"notes" form:"notes"`
	}

	input := new(createInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse request body")
	}

	meal := &models.Meal{
		UserID:   callerID(c),
		Name:     input.Name,
		MealType: input.MealType,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		Fiber:    input.Fiber,
		Sugar:    input.Sugar,
		Notes:    input.Notes,
	}
	if err := meal.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if file, err := c.FormFile("photo"); err == nil {
		url, err := mc.Media.Upload(file, uuid.NewString())
		if err != nil {
			log.Printf("Error uploading meal photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to upload photo",
				Error:   err.Error(),
			})
		}
		meal.PhotoURL = url
	}

	if err := mc.Store.CreateMeal(meal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create meal",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

// Delete removes one of the caller's meals.
func (mc *MealController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	meal, err := mc.Store.GetMeal(id)
	if err != nil {
		return notFoundOr(c, err, "Meal not found")
	}
	if meal.UserID != callerID(c) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Meal not found",
		})
	}
	if err := mc.Store.DeleteMeal(id); err != nil {
		return notFoundOr(c, err, "Meal not found")
	}
	return c.JSON(fiber.Map{"message": "Meal deleted"})
}
