package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

type ChallengeController struct {
	Store storage.Storage
}

// ListActive returns the currently active challenges. Public.
func (cc *ChallengeController) ListActive(c *fiber.Ctx) error {
	challenges, err := cc.Store.ListActiveChallenges()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch challenges",
			Error:   err.Error(),
		})
	}
	return c.JSON(challenges)
}

// ListMine returns the caller's challenge memberships.
func (cc *ChallengeController) ListMine(c *fiber.Ctx) error {
	ucs, err := cc.Store.ListUserChallenges(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch user challenges",
			Error:   err.Error(),
		})
	}
	return c.JSON(ucs)
}

// Join enrolls the caller in a challenge with zero progress. Joining a
// challenge twice returns the existing membership.
func (cc *ChallengeController) Join(c *fiber.Ctx) error {
	type joinInput struct {
		ChallengeID string `json:"challenge_id"`
	}

	input := new(joinInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if input.ChallengeID == "" {
		return badRequest(c, "challenge_id is required")
	}

	uc, err := cc.Store.JoinChallenge(callerID(c), input.ChallengeID)
	if err != nil {
		return notFoundOr(c, err, "Challenge not found")
	}
	return c.Status(fiber.StatusCreated).JSON(uc)
}

// UpdateProgress sets the caller's progress on a challenge; completion
// is stamped by the storage layer exactly once.
func (cc *ChallengeController) UpdateProgress(c *fiber.Ctx) error {
	type progressInput struct {
		Progress int `json:"progress"`
	}

	input := new(progressInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if input.Progress < 0 {
		return badRequest(c, "progress cannot be negative")
	}

	uc, err := cc.Store.UpdateChallengeProgress(callerID(c), c.Params("id"), input.Progress)
	if err != nil {
		return notFoundOr(c, err, "Challenge not found")
	}
	return c.JSON(uc)
}
