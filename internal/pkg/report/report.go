// Package report turns a complaint collection into downloadable report
// documents: a plain-text block format and two delimited-value variants.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/stats"
)

// Status filter keys accepted by Build.
const (
	StatusKeyAll        = "all"
	StatusKeyPending    = "pending"
	StatusKeyInProgress = "in-progress"
	StatusKeyResolved   = "resolved"
	StatusKeyClosed     = "closed"
)

// statusKeyMap maps filter keys to literal status values.
var statusKeyMap = map[string]string{
	StatusKeyPending:    models.StatusPending,
	StatusKeyInProgress: models.StatusInProgress,
	StatusKeyResolved:   models.StatusResolved,
	StatusKeyClosed:     models.StatusClosed,
}

// TypeLabels maps report type keys to their display names.
var TypeLabels = map[string]string{
	"summary":   "Summary Report",
	"detailed":  "Detailed Report",
	"analytics": "Analytics Report",
	"status":    "Status Report",
}

// RangeLabels maps date range keys to their display names.
var RangeLabels = map[string]string{
	"today":   "Today",
	"week":    "This Week",
	"month":   "This Month",
	"quarter": "This Quarter",
	"year":    "This Year",
}

// Summary holds per-status counts over a filtered complaint set. When a
// single-status filter is applied, every other count is necessarily zero
// because the counts are computed on the filtered subset.
type Summary struct {
	Total      int                `json:"total"`
	Pending    int                `json:"pending"`
	InProgress int                `json:"in_progress"`
	Resolved   int                `json:"resolved"`
	Closed     int                `json:"closed"`
	Complaints []models.Complaint `json:"complaints"`
}

// Build filters the collection by the status key and computes the counts on
// the filtered subset. Unknown keys behave like StatusKeyAll.
func Build(complaints []models.Complaint, statusKey string) Summary {
	filtered := complaints
	if status, ok := statusKeyMap[statusKey]; ok {
		filtered = stats.FilterByStatus(complaints, status)
	}
	return Summary{
		Total:      len(filtered),
		Pending:    stats.CountByStatus(filtered, models.StatusPending),
		InProgress: stats.CountByStatus(filtered, models.StatusInProgress),
		Resolved:   stats.CountByStatus(filtered, models.StatusResolved),
		Closed:     stats.CountByStatus(filtered, models.StatusClosed),
		Complaints: filtered,
	}
}

// FormatText renders the plain-text report: a header block, summary
// statistics and one section per complaint.
func FormatText(siteName, reportType, dateRange, statusKey string, s Summary) string {
	var b strings.Builder

	typeLabel := TypeLabels[reportType]
	if typeLabel == "" {
		typeLabel = TypeLabels["summary"]
	}
	rangeLabel := RangeLabels[dateRange]
	if rangeLabel == "" {
		rangeLabel = RangeLabels["week"]
	}
	statusLabel := "All Status"
	if status, ok := statusKeyMap[statusKey]; ok {
		statusLabel = status + " Only"
	}

	fmt.Fprintf(&b, "%s - %s\n", siteName, typeLabel)
	fmt.Fprintf(&b, "Generated on: %s\n", time.Now().Format("02 Jan 2006 15:04:05"))
	fmt.Fprintf(&b, "Date Range: %s\n", rangeLabel)
	fmt.Fprintf(&b, "Status Filter: %s\n\n", statusLabel)

	b.WriteString("SUMMARY STATISTICS:\n")
	fmt.Fprintf(&b, "Total Complaints: %d\n", s.Total)
	fmt.Fprintf(&b, "Pending: %d\n", s.Pending)
	fmt.Fprintf(&b, "In Progress: %d\n", s.InProgress)
	fmt.Fprintf(&b, "Resolved: %d\n", s.Resolved)
	fmt.Fprintf(&b, "Closed: %d\n\n", s.Closed)

	b.WriteString("DETAILED COMPLAINTS:\n")
	for _, c := range s.Complaints {
		fmt.Fprintf(&b, "\nID: %s\n", c.ID)
		fmt.Fprintf(&b, "Subject: %s\n", c.Subject)
		fmt.Fprintf(&b, "Type: %s\n", c.IssueType)
		fmt.Fprintf(&b, "Status: %s\n", c.Status)
		fmt.Fprintf(&b, "Date: %s\n", c.DateSubmitted)
		fmt.Fprintf(&b, "Description: %s\n", c.Description)
		b.WriteString("---\n")
	}

	return b.String()
}

// FormatCSV renders the seven-column export. Every field is double-quoted;
// embedded quotes are doubled so the rows stay parseable.
func FormatCSV(s Summary) string {
	rows := make([]string, 0, len(s.Complaints)+1)
	rows = append(rows, "ID,Subject,Type,Status,Date,Name,Description")
	for _, c := range s.Complaints {
		name := c.Name
		if name == "" {
			name = "Anonymous"
		}
		rows = append(rows, strings.Join([]string{
			quote(c.ID),
			quote(c.Subject),
			quote(c.IssueType),
			quote(c.Status),
			quote(c.DateSubmitted),
			quote(name),
			quote(c.Description),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// FormatExcelCSV renders the five-column variant used for the Excel label.
func FormatExcelCSV(s Summary) string {
	rows := make([]string, 0, len(s.Complaints)+1)
	rows = append(rows, "ID,Subject,Type,Status,Date")
	for _, c := range s.Complaints {
		rows = append(rows, strings.Join([]string{
			quote(c.ID),
			quote(c.Subject),
			quote(c.IssueType),
			quote(c.Status),
			quote(c.DateSubmitted),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// FileName builds the download name, e.g. "complaint-report-summary-1717171717171.csv".
func FileName(prefix, reportType, ext string) string {
	return fmt.Sprintf("%s-%s-%d.%s", prefix, reportType, time.Now().UnixMilli(), ext)
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
