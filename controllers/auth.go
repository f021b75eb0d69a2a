package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/auth"
	"github.com/gitmusaddique/FitnessTracker-sub000/models"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

type AuthController struct {
	Store storage.Storage
	Auth  *auth.Manager
}

// Register handles user registration
func (ac *AuthController) Register(c *fiber.Ctx) error {
	type registerInput struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(registerInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return badRequest(c, "Missing required fields")
	}

	// Check if user already exists
	if _, err := ac.Store.GetUserByEmail(input.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "User with this email already exists",
		})
	} else if !errors.Is(err, storage.ErrNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Unexpected error",
			Error:   err.Error(),
		})
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
		})
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     models.RoleUser,
	}
	if err := ac.Store.CreateUser(user); err != nil {
		// The pre-check and the insert are not one transaction; the
		// backend's uniqueness rule closes the race.
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "User with this email already exists",
			})
		}
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create user",
			Error:   err.Error(),
		})
	}

	token, err := ac.Auth.IssueUserToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles user authentication
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type loginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Store.GetUserByEmail(input.Email)
	if err != nil || !auth.CheckPassword(input.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid credentials",
		})
	}

	token, err := ac.Auth.IssueUserToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the current caller's profile.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user, err := ac.Store.GetUser(callerID(c))
	if err != nil {
		// The token outlived its subject.
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	return c.JSON(user)
}

// Logout doesn't invalidate the token as JWTs are stateless; the client
// discards it. A stolen token stays valid until expiry — known
// limitation of the design.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// Refresh issues a fresh token for a still-valid one.
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	type refreshInput struct {
		Token string `json:"token"`
	}

	input := new(refreshInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}

	id, err := ac.Auth.VerifyUserToken(input.Token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid refresh token",
		})
	}
	user, err := ac.Store.GetUser(id)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	token, err := ac.Auth.IssueUserToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate token",
		})
	}
	return c.JSON(fiber.Map{"token": token})
}

// AdminLogin authenticates against the same user table but only issues
// a token when the account carries the admin role.
func (ac *AuthController) AdminLogin(c *fiber.Ctx) error {
	type loginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Store.GetUserByEmail(input.Email)
	if err != nil || !auth.CheckPassword(input.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid credentials",
		})
	}
	if user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Admin role required",
		})
	}

	token, err := ac.Auth.IssueAdminToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate token",
		})
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
