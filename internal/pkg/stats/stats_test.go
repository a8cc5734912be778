package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

func sampleComplaints() []models.Complaint {
	return []models.Complaint{
		{ID: "CMP-1", Subject: "Broken fan in lab", Description: "The ceiling fan is broken", Name: "Ravi", IssueType: "Academic Concerns", Status: models.StatusResolved},
		{ID: "CMP-2", Subject: "Hostel food quality", Description: "Dinner was stale", Name: "", IssueType: "Hostel & Food Complaints", Status: models.StatusPending},
		{ID: "CMP-3", Subject: "Library timings", Description: "Closes too early", Name: "Anita", IssueType: "Academic Concerns", Status: models.StatusInProgress},
		{ID: "CMP-4", Subject: "Leaking roof", Description: "Water drips in block B", Name: "Ravi", IssueType: "Infrastructure Problems", Status: models.StatusResolved},
	}
}

func TestCountByStatus(t *testing.T) {
	complaints := sampleComplaints()

	assert.Equal(t, 2, CountByStatus(complaints, models.StatusResolved))
	assert.Equal(t, 1, CountByStatus(complaints, models.StatusPending))
	assert.Equal(t, 1, CountByStatus(complaints, models.StatusInProgress))
	assert.Equal(t, 0, CountByStatus(complaints, models.StatusClosed))
}

func TestResolutionRate(t *testing.T) {
	assert.Equal(t, 0, ResolutionRate(nil))
	assert.Equal(t, 0, ResolutionRate([]models.Complaint{}))

	assert.Equal(t, 50, ResolutionRate(sampleComplaints()))

	// 1 of 3 resolved rounds 33.33 down to 33
	third := []models.Complaint{
		{Status: models.StatusResolved},
		{Status: models.StatusPending},
		{Status: models.StatusPending},
	}
	assert.Equal(t, 33, ResolutionRate(third))

	// 2 of 3 resolved rounds 66.67 up to 67
	twoThirds := []models.Complaint{
		{Status: models.StatusResolved},
		{Status: models.StatusResolved},
		{Status: models.StatusPending},
	}
	assert.Equal(t, 67, ResolutionRate(twoThirds))
}

func TestFilterBySearch(t *testing.T) {
	complaints := sampleComplaints()

	assert.Len(t, FilterBySearch(complaints, ""), 4)
	assert.Len(t, FilterBySearch(complaints, "  "), 4)

	// case-insensitive match on subject
	got := FilterBySearch(complaints, "HOSTEL")
	assert.Len(t, got, 1)
	assert.Equal(t, "CMP-2", got[0].ID)

	// match on description
	got = FilterBySearch(complaints, "drips")
	assert.Len(t, got, 1)
	assert.Equal(t, "CMP-4", got[0].ID)

	// match on name hits both of Ravi's complaints
	got = FilterBySearch(complaints, "ravi")
	assert.Len(t, got, 2)

	assert.Empty(t, FilterBySearch(complaints, "no such thing"))
}

func TestFilterByStatusAndType(t *testing.T) {
	complaints := sampleComplaints()

	assert.Len(t, FilterByStatus(complaints, FilterAll), 4)
	assert.Len(t, FilterByStatus(complaints, ""), 4)
	assert.Len(t, FilterByStatus(complaints, models.StatusResolved), 2)
	assert.Empty(t, FilterByStatus(complaints, models.StatusClosed))

	assert.Len(t, FilterByType(complaints, FilterAll), 4)
	assert.Len(t, FilterByType(complaints, "Academic Concerns"), 2)
	assert.Empty(t, FilterByType(complaints, "Suggestion Box"))
}

func TestApplyCombinesConjunctively(t *testing.T) {
	complaints := sampleComplaints()

	got := Apply(complaints, Filter{Search: "ravi", Status: models.StatusResolved, IssueType: "Infrastructure Problems"})
	assert.Len(t, got, 1)
	assert.Equal(t, "CMP-4", got[0].ID)

	got = Apply(complaints, Filter{Search: "ravi", Status: models.StatusPending})
	assert.Empty(t, got)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	complaints := sampleComplaints()
	before := make([]models.Complaint, len(complaints))
	copy(before, complaints)

	Apply(complaints, Filter{Search: "hostel", Status: models.StatusPending})

	assert.Equal(t, before, complaints)
}

func TestCategoryHistogram(t *testing.T) {
	assert.Empty(t, CategoryHistogram(nil))

	entries := CategoryHistogram(sampleComplaints())
	assert.Equal(t, []HistogramEntry{
		{IssueType: "Academic Concerns", Count: 2},
		{IssueType: "Hostel & Food Complaints", Count: 1},
		{IssueType: "Infrastructure Problems", Count: 1},
	}, entries)
}
