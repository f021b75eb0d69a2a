package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/models"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

type AchievementController struct {
	Store storage.Storage
}

// List returns the caller's unlocked achievements, newest first.
func (ac *AchievementController) List(c *fiber.Ctx) error {
	achievements, err := ac.Store.ListAchievements(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch achievements",
			Error:   err.Error(),
		})
	}
	return c.JSON(achievements)
}

// Check evaluates the rule table against the caller's activity counts
// and returns only the achievements unlocked by this pass. Each type
// unlocks at most once, so a second pass with unchanged counts returns
// an empty list.
func (ac *AchievementController) Check(c *fiber.Ctx) error {
	userID := callerID(c)

	workouts, err := ac.Store.CountWorkoutsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to count workouts",
			Error:   err.Error(),
		})
	}
	meals, err := ac.Store.CountMealsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to count meals",
			Error:   err.Error(),
		})
	}

	unlocked := []models.Achievement{}
	for _, rule := range models.AchievementRules {
		if !rule.Unlocked(workouts, meals) {
			continue
		}
		has, err := ac.Store.HasAchievement(userID, rule.Type)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to check achievements",
				Error:   err.Error(),
			})
		}
		if has {
			continue
		}
		achievement := models.Achievement{
			UserID:      userID,
			Type:        rule.Type,
			Title:       rule.Title,
			Description: rule.Description,
			Points:      rule.Points,
		}
		if err := ac.Store.CreateAchievement(&achievement); err != nil {
			log.Printf("Error unlocking achievement %s: %v", rule.Type, err)
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to unlock achievement",
				Error:   err.Error(),
			})
		}
		unlocked = append(unlocked, achievement)
	}
	return c.JSON(unlocked)
}
