package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/cache"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/stats"
)

const (
	dashboardCacheKey = "dashboard:admin"
	dashboardCacheTTL = 30 * time.Second
)

type dashboardStats struct {
	Total          int                `json:"total"`
	Pending        int                `json:"pending"`
	InProgress     int                `json:"in_progress"`
	Resolved       int                `json:"resolved"`
	Closed         int                `json:"closed"`
	ResolutionRate int                `json:"resolution_rate"`
	Recent         []models.Complaint `json:"recent"`
}

// invalidateDashboardCache drops the cached payload after any complaint
// mutation so the next dashboard read recomputes fresh counts.
func invalidateDashboardCache() {
	if err := cache.Delete(dashboardCacheKey); err != nil {
		log.Warnf("[Dashboard] cache invalidation failed: %v", err)
	}
}

// GET /api/v1/admin/dashboard – triage overview. The payload is cached in
// Redis for a short window since every admin page load requests it.
func HandleAdminDashboard(c *fiber.Ctx) error {
	if cached, err := cache.Get(dashboardCacheKey); err == nil && cached != "" {
		var payload dashboardStats
		if err := json.Unmarshal([]byte(cached), &payload); err == nil {
			return c.JSON(payload)
		}
	}

	complaints := complaintStore.All()
	recent := complaints
	if len(recent) > 5 {
		recent = recent[:5]
	}

	payload := dashboardStats{
		Total:          len(complaints),
		Pending:        stats.CountByStatus(complaints, models.StatusPending),
		InProgress:     stats.CountByStatus(complaints, models.StatusInProgress),
		Resolved:       stats.CountByStatus(complaints, models.StatusResolved),
		Closed:         stats.CountByStatus(complaints, models.StatusClosed),
		ResolutionRate: stats.ResolutionRate(complaints),
		Recent:         recent,
	}

	if data, err := json.Marshal(payload); err == nil {
		if err := cache.Set(dashboardCacheKey, string(data), dashboardCacheTTL); err != nil {
			log.Warnf("[Dashboard] cache write failed: %v", err)
		}
	}

	return c.JSON(payload)
}

// GET /api/v1/dashboard/public – anonymous view: totals plus the category
// histogram in first-occurrence order.
func HandlePublicDashboard(c *fiber.Ctx) error {
	complaints := complaintStore.All()

	return c.JSON(fiber.Map{
		"site_name":       models.GetAppSettings().SiteName,
		"total":           len(complaints),
		"pending":         stats.CountByStatus(complaints, models.StatusPending),
		"in_progress":     stats.CountByStatus(complaints, models.StatusInProgress),
		"resolved":        stats.CountByStatus(complaints, models.StatusResolved),
		"closed":          stats.CountByStatus(complaints, models.StatusClosed),
		"resolution_rate": stats.ResolutionRate(complaints),
		"by_issue_type":   stats.CategoryHistogram(complaints),
	})
}
