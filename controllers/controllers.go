package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

// callerID returns the authenticated user's id set by the JWT middleware.
func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// notFoundOr maps storage absence to 404 and anything else to 500.
func notFoundOr(c *fiber.Ctx, err error, message string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Unexpected error",
		Error:   err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
		Message: message,
	})
}
