package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// GET /api/v1/admin/profile
func HandleAdminProfileGet(c *fiber.Ctx) error {
	return c.JSON(persist.LoadAdminProfile())
}

// PUT /api/v1/admin/profile
func HandleAdminProfileUpdate(c *fiber.Ctx) error {
	var profile models.AdminProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if err := profile.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	persist.SaveAdminProfile(profile)
	return c.JSON(profile)
}

// GET /api/v1/admin/settings
func HandleSettingsGet(c *fiber.Ctx) error {
	return c.JSON(models.GetAppSettings())
}

// PUT /api/v1/admin/settings
func HandleSettingsUpdate(c *fiber.Ctx) error {
	settings := models.DefaultSettings()
	if err := c.BodyParser(settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if err := settings.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	persist.SaveSettings(settings)
	models.SetAppSettings(settings)
	return c.JSON(settings)
}
