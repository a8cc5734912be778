package usercontext

import "github.com/gofiber/fiber/v2"

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey     = "authenticated"
	KeyUserID   = "user_id"
	KeyUsername = "username"
	KeyRole     = "role"
	KeyIsAdmin  = "isAdmin"

	localsKey = "USER_CONTEXT"
)

// UserContext represents the complete user context for a request
type UserContext struct {
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	IsLoggedIn bool   `json:"is_logged_in"`
	IsAdmin    bool   `json:"is_admin"`
}

// Set stores the user context on the fiber context.
func Set(c *fiber.Ctx, ctx UserContext) {
	c.Locals(localsKey, ctx)
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(localsKey); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false, IsAdmin: false}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *fiber.Ctx) bool {
	return GetUserContext(c).IsAdmin
}
