package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/models"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

// AdminController owns the management surface: trainer/gym/user CRUD,
// booking confirmation and the dashboard aggregate. It goes through the
// same storage interface as every other handler.
type AdminController struct {
	Store storage.Storage
}

// Trainers

func (ad *AdminController) ListTrainers(c *fiber.Ctx) error {
	trainers, err := ad.Store.ListTrainers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch trainers",
			Error:   err.Error(),
		})
	}
	return c.JSON(trainers)
}

func (ad *AdminController) GetTrainer(c *fiber.Ctx) error {
	trainer, err := ad.Store.GetTrainer(c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "Trainer not found")
	}
	return c.JSON(trainer)
}

func (ad *AdminController) CreateTrainer(c *fiber.Ctx) error {
	trainer := new(models.Trainer)
	if err := c.BodyParser(trainer); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	trainer.ID = ""
	if err := trainer.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := ad.Store.CreateTrainer(trainer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create trainer",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(trainer)
}

func (ad *AdminController) UpdateTrainer(c *fiber.Ctx) error {
	patch := new(models.TrainerPatch)
	if err := c.BodyParser(patch); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := patch.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	trainer, err := ad.Store.UpdateTrainer(c.Params("id"), *patch)
	if err != nil {
		return notFoundOr(c, err, "Trainer not found")
	}
	return c.JSON(trainer)
}

func (ad *AdminController) DeleteTrainer(c *fiber.Ctx) error {
	if err := ad.Store.DeleteTrainer(c.Params("id")); err != nil {
		return notFoundOr(c, err, "Trainer not found")
	}
	return c.JSON(fiber.Map{"message": "Trainer deleted"})
}

// Gyms

func (ad *AdminController) ListGyms(c *fiber.Ctx) error {
	gyms, err := ad.Store.ListGyms()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch gyms",
			Error:   err.Error(),
		})
	}
	return c.JSON(gyms)
}

func (ad *AdminController) GetGym(c *fiber.Ctx) error {
	gym, err := ad.Store.GetGym(c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "Gym not found")
	}
	return c.JSON(gym)
}

func (ad *AdminController) CreateGym(c *fiber.Ctx) error {
	gym := new(models.Gym)
	if err := c.BodyParser(gym); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	gym.ID = ""
	if err := gym.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := ad.Store.CreateGym(gym); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create gym",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(gym)
}

func (ad *AdminController) UpdateGym(c *fiber.Ctx) error {
	patch := new(models.GymPatch)
	if err := c.BodyParser(patch); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := patch.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	gym, err := ad.Store.UpdateGym(c.Params("id"), *patch)
	if err != nil {
		return notFoundOr(c, err, "Gym not found")
	}
	return c.JSON(gym)
}

func (ad *AdminController) DeleteGym(c *fiber.Ctx) error {
	if err := ad.Store.DeleteGym(c.Params("id")); err != nil {
		return notFoundOr(c, err, "Gym not found")
	}
	return c.JSON(fiber.Map{"message": "Gym deleted"})
}

// Users

func (ad *AdminController) ListUsers(c *fiber.Ctx) error {
	users, err := ad.Store.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}
	return c.JSON(users)
}

func (ad *AdminController) GetUser(c *fiber.Ctx) error {
	user, err := ad.Store.GetUser(c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "User not found")
	}
	return c.JSON(user)
}

func (ad *AdminController) UpdateUser(c *fiber.Ctx) error {
	patch := new(models.UserPatch)
	if err := c.BodyParser(patch); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if patch.Email != nil && *patch.Email == "" {
		return badRequest(c, "email cannot be empty")
	}
	if patch.Role != nil && *patch.Role != models.RoleUser && *patch.Role != models.RoleAdmin {
		return badRequest(c, "role must be user or admin")
	}
	user, err := ad.Store.UpdateUser(c.Params("id"), *patch)
	if err != nil {
		return notFoundOr(c, err, "User not found")
	}
	return c.JSON(user)
}

func (ad *AdminController) DeleteUser(c *fiber.Ctx) error {
	if err := ad.Store.DeleteUser(c.Params("id")); err != nil {
		return notFoundOr(c, err, "User not found")
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

// Bookings

// ConfirmBooking moves a pending booking to confirmed. Only the admin
// surface drives this edge of the state machine.
func (ad *AdminController) ConfirmBooking(c *fiber.Ctx) error {
	booking, err := ad.Store.ConfirmBooking(c.Params("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot confirm booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// Stats

func (ad *AdminController) Stats(c *fiber.Ctx) error {
	stats, err := ad.Store.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch stats",
			Error:   err.Error(),
		})
	}
	return c.JSON(stats)
}
