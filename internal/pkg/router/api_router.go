package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/MarcusWeller/CampusVoice/app/controllers"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "CampusVoice API",
		})
	})

	v1 := api.Group("/v1")
	v1.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendString("pong")
	})

	// auth
	auth := v1.Group("/auth")
	auth.Post("/login", controllers.HandleAuthLogin)
	auth.Post("/signup", controllers.HandleAuthSignup)
	auth.Post("/logout", controllers.HandleAuthLogout)
	auth.Post("/reset-password", controllers.HandleAuthResetPassword)
	auth.Get("/me", middleware.RequireAuth, controllers.HandleAuthMe)

	// complaints
	v1.Post("/complaints", controllers.HandleComplaintSubmit)
	v1.Get("/complaints", controllers.HandleComplaintList)
	v1.Get("/complaints/:id", controllers.HandleComplaintGet)

	// feedback
	v1.Post("/feedbacks", controllers.HandleFeedbackSubmit)
	v1.Get("/feedbacks", controllers.HandleFeedbackList)
	v1.Post("/feedbacks/:id/vote", controllers.HandleFeedbackVote)

	// public dashboard
	v1.Get("/dashboard/public", controllers.HandlePublicDashboard)

	// admin area
	admin := v1.Group("/admin", middleware.RequireAdmin)
	admin.Get("/dashboard", controllers.HandleAdminDashboard)
	admin.Patch("/complaints/:id/status", controllers.HandleComplaintStatusUpdate)
	admin.Delete("/complaints/:id", controllers.HandleComplaintDelete)
	admin.Get("/reports/summary", controllers.HandleReportSummary)
	admin.Get("/reports/export", controllers.HandleReportExport)
	admin.Get("/profile", controllers.HandleAdminProfileGet)
	admin.Put("/profile", controllers.HandleAdminProfileUpdate)
	admin.Get("/settings", controllers.HandleSettingsGet)
	admin.Put("/settings", controllers.HandleSettingsUpdate)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
