package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	jwtv4 "github.com/golang-jwt/jwt/v4"

	"github.com/gitmusaddique/FitnessTracker-sub000/auth"
	"github.com/gitmusaddique/FitnessTracker-sub000/models"
)

// Protected guards the end-user surface. On success the caller's id is
// available as the "userID" local.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			userToken := c.Locals("user")
			token, ok := userToken.(*jwtv4.Token)
			if !ok {
				return unauthorized(c, "Invalid token")
			}
			claims, ok := token.Claims.(jwtv4.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid token claims")
			}
			id, ok := claims["id"].(string)
			if !ok || id == "" {
				return unauthorized(c, "Invalid user ID in token")
			}
			c.Locals("userID", id)
			return c.Next()
		},
	})
}

// AdminProtected guards the admin surface. The two token schemes use
// independent secrets, so the check is two-step: a token valid under
// the admin secret with the admin role claim passes; a token that is
// merely a valid end-user token is authenticated but not allowed here
// and gets 403 rather than 401.
func AdminProtected(manager *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return unauthorized(c, "Missing or malformed authorization header")
		}

		id, role, err := manager.VerifyAdminToken(tokenString)
		if err == nil {
			if role != models.RoleAdmin {
				return forbidden(c)
			}
			c.Locals("userID", id)
			c.Locals("role", role)
			return c.Next()
		}

		if _, uerr := manager.VerifyUserToken(tokenString); uerr == nil {
			return forbidden(c)
		}
		return unauthorized(c, "Invalid or expired token")
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "Admin role required",
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}
