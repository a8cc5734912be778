package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/stats"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/store"
)

type complaintRequest struct {
	Name         string `json:"name" validate:"max=150"`
	RollNumber   string `json:"roll_number" validate:"max=50"`
	IssueType    string `json:"issue_type" validate:"required"`
	Subject      string `json:"subject" validate:"required,max=255"`
	Description  string `json:"description" validate:"required,min=10"`
	ProfileImage string `json:"profile_image"`
}

// POST /api/v1/complaints – submit a new complaint.
// Validation failures are the only way this can fail; once the draft is
// accepted the submission always succeeds, even with the database down.
func HandleComplaintSubmit(c *fiber.Ctx) error {
	var req complaintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}
	if !models.IsValidIssueType(req.IssueType) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": "Please select a valid issue type",
		})
	}

	complaint := complaintStore.Submit(store.ComplaintDraft{
		Name:         req.Name,
		RollNumber:   req.RollNumber,
		IssueType:    req.IssueType,
		Subject:      req.Subject,
		Description:  req.Description,
		ProfileImage: req.ProfileImage,
	})
	invalidateDashboardCache()

	return c.Status(fiber.StatusCreated).JSON(complaint)
}

// GET /api/v1/complaints – list complaints, filtered by the conjunctive
// search/status/type pipeline. "All" (or absence) bypasses a filter.
func HandleComplaintList(c *fiber.Ctx) error {
	filtered := stats.Apply(complaintStore.All(), stats.Filter{
		Search:    c.Query("search"),
		Status:    c.Query("status", stats.FilterAll),
		IssueType: c.Query("type", stats.FilterAll),
	})

	return c.JSON(fiber.Map{
		"complaints": filtered,
		"total":      len(filtered),
	})
}

// GET /api/v1/complaints/:id
func HandleComplaintGet(c *fiber.Ctx) error {
	complaint, ok := complaintStore.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Complaint not found",
		})
	}
	return c.JSON(complaint)
}

// PATCH /api/v1/admin/complaints/:id/status – triage a complaint. Any of
// the four statuses may follow any other.
func HandleComplaintStatusUpdate(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if !models.IsValidStatus(req.Status) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": "Unknown status",
		})
	}

	if !complaintStore.UpdateStatus(c.Params("id"), req.Status) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Complaint not found",
		})
	}
	invalidateDashboardCache()

	complaint, _ := complaintStore.Get(c.Params("id"))
	return c.JSON(complaint)
}

// DELETE /api/v1/admin/complaints/:id?confirm=true – destructive, so the
// explicit confirmation flag is required; without it nothing is touched.
func HandleComplaintDelete(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "confirmation_required",
			"message": "Pass confirm=true to delete this complaint",
		})
	}

	if !complaintStore.Remove(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Complaint not found",
		})
	}
	invalidateDashboardCache()

	return c.JSON(fiber.Map{"message": "Complaint deleted"})
}
