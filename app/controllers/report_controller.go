package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/report"
)

// GET /api/v1/admin/reports/summary – report preview without a download.
func HandleReportSummary(c *fiber.Ctx) error {
	summary := report.Build(complaintStore.All(), c.Query("status", report.StatusKeyAll))
	return c.JSON(summary)
}

// GET /api/v1/admin/reports/export – serialize a filtered complaint set and
// deliver it as a file download.
//
// Query parameters: format=txt|csv|excel, type=summary|detailed|analytics|status,
// status=all|pending|in-progress|resolved|closed, range=today|week|month|quarter|year.
func HandleReportExport(c *fiber.Ctx) error {
	reportType := c.Query("type", "summary")
	statusKey := c.Query("status", report.StatusKeyAll)
	dateRange := c.Query("range", "week")

	if _, ok := report.TypeLabels[reportType]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Unknown report type",
		})
	}

	summary := report.Build(complaintStore.All(), statusKey)

	var (
		content  string
		fileName string
		mimeType string
	)

	switch c.Query("format", "txt") {
	case "txt":
		siteName := models.GetAppSettings().SiteName
		content = report.FormatText(siteName, reportType, dateRange, statusKey, summary)
		fileName = report.FileName("complaint-report", reportType, "txt")
		mimeType = "text/plain"
	case "csv":
		content = report.FormatCSV(summary)
		fileName = report.FileName("complaint-data", reportType, "csv")
		mimeType = "text/csv"
	case "excel":
		content = report.FormatExcelCSV(summary)
		fileName = report.FileName("complaint-report", reportType, "csv")
		mimeType = "text/csv"
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Unknown export format",
		})
	}

	c.Set(fiber.HeaderContentType, mimeType+"; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.SendString(content)
}
