package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/models"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

type BookingController struct {
	Store storage.Storage
}

// List returns the caller's bookings, newest first.
func (bc *BookingController) List(c *fiber.Ctx) error {
	bookings, err := bc.Store.ListBookingsByUser(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// Create books a session with a trainer. New bookings start pending.
func (bc *BookingController) Create(c *fiber.Ctx) error {
	type createInput struct {
		TrainerID string    `json:"trainer_id"`
		Date      time.Time `json:"date"`
		Notes     string    `json:"notes"`
	}

	input := new(createInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if input.TrainerID == "" {
		return badRequest(c, "trainer_id is required")
	}
	if input.Date.IsZero() {
		return badRequest(c, "date is required")
	}

	if _, err := bc.Store.GetTrainer(input.TrainerID); err != nil {
		return notFoundOr(c, err, "Trainer not found")
	}

	booking := &models.Booking{
		UserID:    callerID(c),
		TrainerID: input.TrainerID,
		Date:      input.Date,
		Status:    models.BookingPending,
		Notes:     input.Notes,
	}
	if err := bc.Store.CreateBooking(booking); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// Cancel moves the caller's booking to its terminal state. Cancelling
// an already-cancelled booking succeeds and just returns it.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	booking, err := bc.Store.GetBooking(id)
	if err != nil {
		return notFoundOr(c, err, "Booking not found")
	}
	if booking.UserID != callerID(c) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	cancelled, err := bc.Store.CancelBooking(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(cancelled)
}
