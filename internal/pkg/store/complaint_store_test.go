package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

type fakeComplaintBackend struct {
	loaded  []models.Complaint
	saved   []string
	updated map[string]string
	deleted []string
}

func newFakeComplaintBackend(loaded ...models.Complaint) *fakeComplaintBackend {
	return &fakeComplaintBackend{loaded: loaded, updated: map[string]string{}}
}

func (b *fakeComplaintBackend) SaveComplaint(c models.Complaint) models.Complaint {
	b.saved = append(b.saved, c.ID)
	return c
}

func (b *fakeComplaintBackend) LoadComplaints() []models.Complaint {
	return b.loaded
}

func (b *fakeComplaintBackend) UpdateComplaintStatus(id, status string) {
	b.updated[id] = status
}

func (b *fakeComplaintBackend) DeleteComplaint(id string) {
	b.deleted = append(b.deleted, id)
}

func TestComplaintStoreSubmit(t *testing.T) {
	backend := newFakeComplaintBackend()
	s := NewComplaintStore(backend)
	s.Load()

	saved := s.Submit(ComplaintDraft{
		Name:        "Ravi",
		RollNumber:  "21CS101",
		IssueType:   "Academic Concerns",
		Subject:     "Broken projector",
		Description: "Room 204 projector is dead",
	})

	assert.True(t, strings.HasPrefix(saved.ID, "CMP-"))
	assert.Equal(t, models.StatusPending, saved.Status)
	assert.Equal(t, time.Now().Format("02 Jan 2006"), saved.DateSubmitted)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, []string{saved.ID}, backend.saved)

	got, ok := s.Get(saved.ID)
	require.True(t, ok)
	assert.Equal(t, saved, got)
}

func TestComplaintStoreSubmitPrepends(t *testing.T) {
	s := NewComplaintStore(newFakeComplaintBackend())

	first := s.Submit(ComplaintDraft{Subject: "first", Description: "long enough text", IssueType: "Other"})
	second := s.Submit(ComplaintDraft{Subject: "second", Description: "long enough text", IssueType: "Other"})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestComplaintStoreUpdateStatus(t *testing.T) {
	backend := newFakeComplaintBackend(
		models.Complaint{ID: "CMP-2", Subject: "newer", Status: models.StatusPending},
		models.Complaint{ID: "CMP-1", Subject: "older", Status: models.StatusPending},
	)
	s := NewComplaintStore(backend)
	s.Load()

	require.True(t, s.UpdateStatus("CMP-1", models.StatusResolved))

	// only the status changed; order and the other fields stayed put
	all := s.All()
	assert.Equal(t, "CMP-2", all[0].ID)
	assert.Equal(t, models.StatusPending, all[0].Status)
	assert.Equal(t, "CMP-1", all[1].ID)
	assert.Equal(t, "older", all[1].Subject)
	assert.Equal(t, models.StatusResolved, all[1].Status)

	assert.Equal(t, models.StatusResolved, backend.updated["CMP-1"])

	assert.False(t, s.UpdateStatus("CMP-404", models.StatusClosed))
	assert.NotContains(t, backend.updated, "CMP-404")
}

func TestComplaintStoreRemove(t *testing.T) {
	backend := newFakeComplaintBackend(
		models.Complaint{ID: "CMP-2"},
		models.Complaint{ID: "CMP-1"},
	)
	s := NewComplaintStore(backend)
	s.Load()

	require.True(t, s.Remove("CMP-1"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"CMP-1"}, backend.deleted)

	// removing an unknown id changes nothing
	assert.False(t, s.Remove("CMP-1"))
	assert.Equal(t, 1, s.Len())
	assert.Len(t, backend.deleted, 1)
}

func TestComplaintStoreLoadReplaces(t *testing.T) {
	backend := newFakeComplaintBackend(models.Complaint{ID: "CMP-A"})
	s := NewComplaintStore(backend)
	s.Load()
	require.Equal(t, 1, s.Len())

	backend.loaded = []models.Complaint{{ID: "CMP-B"}, {ID: "CMP-C"}}
	s.Load()

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "CMP-B", all[0].ID)
}
