// Package store holds the in-memory collections that act as the single
// source of truth for a running session. Records are kept newest first;
// every mutation is written through the persistence adapter, which absorbs
// remote failures, so mutations here cannot fail.
package store

import (
	"sync"
	"time"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// ComplaintBackend is the slice of the persistence adapter the complaint
// store writes through.
type ComplaintBackend interface {
	SaveComplaint(c models.Complaint) models.Complaint
	LoadComplaints() []models.Complaint
	UpdateComplaintStatus(id, status string)
	DeleteComplaint(id string)
}

// ComplaintDraft is a submission before the store assigns id, timestamp
// and initial status.
type ComplaintDraft struct {
	Name         string
	RollNumber   string
	IssueType    string
	Subject      string
	Description  string
	ProfileImage string
}

type ComplaintStore struct {
	mu      sync.RWMutex
	items   []models.Complaint
	backend ComplaintBackend
}

func NewComplaintStore(backend ComplaintBackend) *ComplaintStore {
	return &ComplaintStore{backend: backend}
}

// Load replaces the whole collection with whatever the adapter returns.
// Pending local mutations are not merged.
func (s *ComplaintStore) Load() {
	items := s.backend.LoadComplaints()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

// Submit builds a complaint from the draft, persists it and prepends the
// stored record. The caller validates the draft; Submit itself cannot fail.
func (s *ComplaintStore) Submit(draft ComplaintDraft) models.Complaint {
	now := time.Now()
	complaint := models.Complaint{
		ID:            models.NewComplaintID(),
		Name:          draft.Name,
		RollNumber:    draft.RollNumber,
		IssueType:     draft.IssueType,
		Subject:       draft.Subject,
		Description:   draft.Description,
		ProfileImage:  draft.ProfileImage,
		Status:        models.StatusPending,
		DateSubmitted: now.Format("02 Jan 2006"),
		CreatedAt:     now,
	}

	saved := s.backend.SaveComplaint(complaint)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.Complaint{saved}, s.items...)
	return saved
}

// UpdateStatus replaces only the status of the matching record, keeping
// every other field and the collection order intact. Returns false when
// the id is unknown.
func (s *ComplaintStore) UpdateStatus(id, status string) bool {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.backend.UpdateComplaintStatus(id, status)
	}
	return found
}

// Remove deletes the matching record. The interactive confirmation happens
// at the HTTP layer before this is called. Returns false when the id is
// unknown.
func (s *ComplaintStore) Remove(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.backend.DeleteComplaint(id)
	}
	return found
}

// All returns a copy of the collection, newest first.
func (s *ComplaintStore) All() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Complaint, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given id.
func (s *ComplaintStore) Get(id string) (models.Complaint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return models.Complaint{}, false
}

// Len returns the collection size.
func (s *ComplaintStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
