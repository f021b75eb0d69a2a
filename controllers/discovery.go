package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

// TrainerController serves the public trainer discovery surface.
type TrainerController struct {
	Store storage.Storage
}

func (tc *TrainerController) List(c *fiber.Ctx) error {
	query := c.Query("search")

	var err error
	var trainers any
	if query != "" {
		trainers, err = tc.Store.SearchTrainers(query)
	} else {
		trainers, err = tc.Store.ListTrainers()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch trainers",
			Error:   err.Error(),
		})
	}
	return c.JSON(trainers)
}

func (tc *TrainerController) Get(c *fiber.Ctx) error {
	trainer, err := tc.Store.GetTrainer(c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "Trainer not found")
	}
	return c.JSON(trainer)
}

// GymController serves the public gym discovery surface.
type GymController struct {
	Store storage.Storage
}

func (gc *GymController) List(c *fiber.Ctx) error {
	query := c.Query("search")

	var err error
	var gyms any
	if query != "" {
		gyms, err = gc.Store.SearchGyms(query)
	} else {
		gyms, err = gc.Store.ListGyms()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch gyms",
			Error:   err.Error(),
		})
	}
	return c.JSON(gyms)
}

func (gc *GymController) Get(c *fiber.Ctx) error {
	gym, err := gc.Store.GetGym(c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "Gym not found")
	}
	return c.JSON(gym)
}
