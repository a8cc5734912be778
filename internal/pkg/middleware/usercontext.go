package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MarcusWeller/CampusVoice/internal/pkg/session"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request.
// This centralizes session handling so controllers only read the context.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := usercontext.UserContext{IsLoggedIn: false, IsAdmin: false}

	store := session.GetSessionStore()
	if store == nil {
		usercontext.Set(c, anonymous)
		return c.Next()
	}

	sess, err := store.Get(c)
	if err != nil {
		usercontext.Set(c, anonymous)
		return c.Next()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		usercontext.Set(c, anonymous)
		return c.Next()
	}

	id, ok := userID.(uint)
	if !ok {
		usercontext.Set(c, anonymous)
		return c.Next()
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)
	role, _ := sess.Get(usercontext.KeyRole).(string)
	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)

	usercontext.Set(c, usercontext.UserContext{
		UserID:     id,
		Username:   username,
		Role:       role,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	})

	return c.Next()
}
