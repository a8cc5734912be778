package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/store"
)

type feedbackRequest struct {
	ComplaintID string `json:"complaint_id" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"required"`
	SubmittedBy string `json:"submitted_by" validate:"max=150"`
}

// POST /api/v1/feedbacks – attach feedback to a resolved complaint.
// Eligibility is enforced here, at the submission boundary; the store
// itself stays permissive.
func HandleFeedbackSubmit(c *fiber.Ctx) error {
	var req feedbackRequest
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
	if strings.TrimSpace(req.Comment) == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": "Comment must not be blank",
		})
	}

	complaint, ok := complaintStore.Get(req.ComplaintID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Complaint not found",
		})
	}
	if complaint.Status != models.StatusResolved {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": "Feedback can only be submitted for resolved complaints",
		})
	}

	feedback := feedbackStore.Submit(store.FeedbackDraft{
		ComplaintID: req.ComplaintID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		SubmittedBy: req.SubmittedBy,
	})

	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// GET /api/v1/feedbacks – the collection newest first plus the average rating.
func HandleFeedbackList(c *fiber.Ctx) error {
	feedbacks := feedbackStore.All()
	return c.JSON(fiber.Map{
		"feedbacks":      feedbacks,
		"total":          len(feedbacks),
		"average_rating": feedbackStore.AverageRating(),
	})
}

// POST /api/v1/feedbacks/:id/vote – increment one vote counter by exactly
// one. Voting repeatedly is allowed; there is no duplicate detection.
func HandleFeedbackVote(c *fiber.Ctx) error {
	var req struct {
		Helpful bool `json:"helpful"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	if !feedbackStore.Vote(c.Params("id"), req.Helpful) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Feedback not found",
		})
	}

	feedback, _ := feedbackStore.Get(c.Params("id"))
	return c.JSON(feedback)
}
