package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MarcusWeller/CampusVoice/internal/pkg/middleware"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
