package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MarcusWeller/CampusVoice/internal/pkg/usercontext"
)

// RequireAuth rejects requests without a logged-in session.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "Login required",
		})
	}
	return c.Next()
}

// RequireAdmin rejects requests whose session does not carry the admin role.
func RequireAdmin(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "Login required",
		})
	}
	if !usercontext.IsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "Admin role required",
		})
	}
	return c.Next()
}
