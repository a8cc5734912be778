package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComplaintID(t *testing.T) {
	id := NewComplaintID()

	assert.Regexp(t, regexp.MustCompile(`^CMP-\d{13}-[0-9a-f]{6}$`), id)
	assert.NotEqual(t, id, NewComplaintID())
}

func TestNewFeedbackID(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^FB-\d{13}-[0-9a-f]{6}$`), NewFeedbackID())
}

func TestComplaintValidate(t *testing.T) {
	c := &Complaint{
		ID:          NewComplaintID(),
		IssueType:   "Academic Concerns",
		Subject:     "Broken projector",
		Description: "Room 204 projector is dead",
	}
	require.NoError(t, c.Validate())

	short := *c
	short.Description = "too short"
	assert.Error(t, short.Validate())

	badType := *c
	badType.IssueType = "Parking"
	assert.Error(t, badType.Validate())
}

func TestIsValidIssueType(t *testing.T) {
	for _, it := range IssueTypes {
		assert.True(t, IsValidIssueType(it))
	}
	assert.False(t, IsValidIssueType("Parking"))
	assert.False(t, IsValidIssueType(""))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("Reopened"))
	assert.False(t, IsValidStatus("pending"))
}
