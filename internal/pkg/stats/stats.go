// Package stats provides pure filter and aggregation functions over
// complaint collections. Nothing here mutates its input.
package stats

import (
	"math"
	"strings"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// FilterAll is the sentinel that bypasses a status or type filter.
const FilterAll = "All"

// Filter describes a conjunctive filter pipeline: search AND status AND type.
type Filter struct {
	Search    string
	Status    string
	IssueType string
}

// HistogramEntry is one issue-type bucket. Entries keep the order in which
// each type first occurs in the collection.
type HistogramEntry struct {
	IssueType string `json:"issue_type"`
	Count     int    `json:"count"`
}

// CountByStatus counts records whose status matches exactly.
func CountByStatus(complaints []models.Complaint, status string) int {
	count := 0
	for _, c := range complaints {
		if c.Status == status {
			count++
		}
	}
	return count
}

// ResolutionRate returns round(100 * resolved / total) as a whole percentage,
// and 0 for an empty collection.
func ResolutionRate(complaints []models.Complaint) int {
	total := len(complaints)
	if total == 0 {
		return 0
	}
	resolved := CountByStatus(complaints, models.StatusResolved)
	return int(math.Round(float64(resolved) / float64(total) * 100))
}

// FilterBySearch keeps records whose subject, description or name contains
// the term, case-insensitively. A record without a name simply cannot match
// on name. An empty term keeps everything.
func FilterBySearch(complaints []models.Complaint, term string) []models.Complaint {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return complaints
	}
	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if strings.Contains(strings.ToLower(c.Subject), term) ||
			strings.Contains(strings.ToLower(c.Description), term) ||
			(c.Name != "" && strings.Contains(strings.ToLower(c.Name), term)) {
			out = append(out, c)
		}
	}
	return out
}

// FilterByStatus keeps records with the exact status; FilterAll bypasses.
func FilterByStatus(complaints []models.Complaint, status string) []models.Complaint {
	if status == "" || status == FilterAll {
		return complaints
	}
	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// FilterByType keeps records with the exact issue type; FilterAll bypasses.
func FilterByType(complaints []models.Complaint, issueType string) []models.Complaint {
	if issueType == "" || issueType == FilterAll {
		return complaints
	}
	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if c.IssueType == issueType {
			out = append(out, c)
		}
	}
	return out
}

// Apply runs the combined pipeline: search, then status, then type.
func Apply(complaints []models.Complaint, f Filter) []models.Complaint {
	out := FilterBySearch(complaints, f.Search)
	out = FilterByStatus(out, f.Status)
	out = FilterByType(out, f.IssueType)
	return out
}

// CategoryHistogram tallies complaints by issue type, preserving the order
// in which each type first occurs.
func CategoryHistogram(complaints []models.Complaint) []HistogramEntry {
	index := make(map[string]int, len(models.IssueTypes))
	entries := make([]HistogramEntry, 0, len(models.IssueTypes))
	for _, c := range complaints {
		if i, ok := index[c.IssueType]; ok {
			entries[i].Count++
			continue
		}
		index[c.IssueType] = len(entries)
		entries = append(entries, HistogramEntry{IssueType: c.IssueType, Count: 1})
	}
	return entries
}
