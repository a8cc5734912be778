package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

func reportComplaints() []models.Complaint {
	return []models.Complaint{
		{ID: "CMP-1", Subject: "Broken projector", IssueType: "Academic Concerns", Status: models.StatusResolved, DateSubmitted: "02 Mar 2025", Name: "Ravi", Description: "Room 204 projector is dead"},
		{ID: "CMP-2", Subject: "Mess menu", IssueType: "Hostel & Food Complaints", Status: models.StatusPending, DateSubmitted: "03 Mar 2025", Name: "", Description: `He said "no change"`},
		{ID: "CMP-3", Subject: "WiFi outage", IssueType: "Infrastructure Problems", Status: models.StatusResolved, DateSubmitted: "04 Mar 2025", Name: "Anita", Description: "Block C offline"},
	}
}

func TestBuildCountsOnFilteredSubset(t *testing.T) {
	complaints := reportComplaints()

	all := Build(complaints, StatusKeyAll)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 1, all.Pending)
	assert.Equal(t, 2, all.Resolved)
	assert.Equal(t, 0, all.InProgress)
	assert.Equal(t, 0, all.Closed)
	assert.Len(t, all.Complaints, 3)

	// counts are computed on the subset, so every other status is zero
	resolved := Build(complaints, StatusKeyResolved)
	assert.Equal(t, 2, resolved.Total)
	assert.Equal(t, 2, resolved.Resolved)
	assert.Equal(t, 0, resolved.Pending)
	assert.Len(t, resolved.Complaints, 2)

	// unknown keys behave like all
	unknown := Build(complaints, "bogus")
	assert.Equal(t, 3, unknown.Total)
}

func TestFormatText(t *testing.T) {
	s := Build(reportComplaints(), StatusKeyAll)
	text := FormatText("VCE Complaint Management", "summary", "week", StatusKeyAll, s)

	assert.True(t, strings.HasPrefix(text, "VCE Complaint Management - Summary Report\n"))
	assert.Contains(t, text, "Date Range: This Week")
	assert.Contains(t, text, "Status Filter: All Status")
	assert.Contains(t, text, "Total Complaints: 3")
	assert.Contains(t, text, "ID: CMP-1")
	assert.Contains(t, text, "Description: Block C offline")

	filtered := Build(reportComplaints(), StatusKeyResolved)
	text = FormatText("VCE Complaint Management", "status", "month", StatusKeyResolved, filtered)
	assert.Contains(t, text, "Status Report")
	assert.Contains(t, text, "Status Filter: Resolved Only")
	assert.NotContains(t, text, "CMP-2")
}

func TestFormatCSV(t *testing.T) {
	s := Build(reportComplaints(), StatusKeyAll)
	csv := FormatCSV(s)
	lines := strings.Split(csv, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "ID,Subject,Type,Status,Date,Name,Description", lines[0])

	// every field double-quoted
	assert.Equal(t, `"CMP-1","Broken projector","Academic Concerns","Resolved","02 Mar 2025","Ravi","Room 204 projector is dead"`, lines[1])

	// blank name becomes Anonymous, embedded quotes are doubled
	assert.Contains(t, lines[2], `"Anonymous"`)
	assert.Contains(t, lines[2], `"He said ""no change"""`)
}

func TestFormatExcelCSV(t *testing.T) {
	s := Build(reportComplaints(), StatusKeyAll)
	csv := FormatExcelCSV(s)
	lines := strings.Split(csv, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "ID,Subject,Type,Status,Date", lines[0])
	assert.Equal(t, `"CMP-2","Mess menu","Hostel & Food Complaints","Pending","03 Mar 2025"`, lines[2])
}

func TestFileName(t *testing.T) {
	name := FileName("complaint-report", "summary", "txt")

	assert.True(t, strings.HasPrefix(name, "complaint-report-summary-"))
	assert.True(t, strings.HasSuffix(name, ".txt"))

	// two calls embed timestamps, so prefixes and suffixes stay stable
	other := FileName("complaint-data", "analytics", "csv")
	assert.True(t, strings.HasPrefix(other, "complaint-data-analytics-"))
	assert.True(t, strings.HasSuffix(other, ".csv"))
}
