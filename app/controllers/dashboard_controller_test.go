package controllers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// A triage action must be visible on the very next dashboard read; the
// cached payload is dropped on every complaint mutation.
func TestAdminDashboardReflectsMutationsImmediately(t *testing.T) {
	app := newTestApp(t)
	id := submitComplaint(t, app)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["total"])
	assert.Equal(t, float64(1), payload["pending"])
	assert.Equal(t, float64(0), payload["resolved"])

	resp, _ = doJSON(t, app, fiber.MethodPatch, "/api/v1/admin/complaints/"+id+"/status", map[string]any{
		"status": models.StatusResolved,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), payload["pending"])
	assert.Equal(t, float64(1), payload["resolved"])
	assert.Equal(t, float64(100), payload["resolution_rate"])

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/v1/admin/complaints/"+id+"?confirm=true", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), payload["total"])
	assert.Equal(t, float64(0), payload["resolution_rate"])
}

func TestPublicDashboardHistogram(t *testing.T) {
	app := newTestApp(t)
	submitComplaint(t, app)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/v1/dashboard/public", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["total"])
	assert.Equal(t, models.GetAppSettings().SiteName, payload["site_name"])

	histogram, ok := payload["by_issue_type"].([]any)
	require.True(t, ok)
	require.Len(t, histogram, 1)
	entry := histogram[0].(map[string]any)
	assert.Equal(t, "Academic Concerns", entry["issue_type"])
	assert.Equal(t, float64(1), entry["count"])
}
