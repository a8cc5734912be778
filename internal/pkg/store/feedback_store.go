package store

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// FeedbackBackend is the slice of the persistence adapter the feedback
// store writes through.
type FeedbackBackend interface {
	SaveFeedback(f models.Feedback) models.Feedback
	LoadFeedbacks() []models.Feedback
	UpdateFeedbackVotes(id string, helpful, notHelpful int)
}

// FeedbackDraft is a submission before the store assigns id, timestamp and
// zeroed vote counters. Eligibility (the referenced complaint must be
// Resolved) is checked by the submitting handler, not here.
type FeedbackDraft struct {
	ComplaintID string
	Rating      int
	Comment     string
	SubmittedBy string
}

type FeedbackStore struct {
	mu      sync.RWMutex
	items   []models.Feedback
	backend FeedbackBackend
}

func NewFeedbackStore(backend FeedbackBackend) *FeedbackStore {
	return &FeedbackStore{backend: backend}
}

// Load replaces the whole collection with whatever the adapter returns.
func (s *FeedbackStore) Load() {
	items := s.backend.LoadFeedbacks()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

// Submit builds a feedback record from the draft, persists it and prepends
// the stored record.
func (s *FeedbackStore) Submit(draft FeedbackDraft) models.Feedback {
	submittedBy := strings.TrimSpace(draft.SubmittedBy)
	if submittedBy == "" {
		submittedBy = "Anonymous"
	}

	feedback := models.Feedback{
		ID:          models.NewFeedbackID(),
		ComplaintID: draft.ComplaintID,
		Rating:      draft.Rating,
		Comment:     strings.TrimSpace(draft.Comment),
		SubmittedBy: submittedBy,
		Helpful:     0,
		NotHelpful:  0,
		CreatedAt:   time.Now(),
	}

	saved := s.backend.SaveFeedback(feedback)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.Feedback{saved}, s.items...)
	return saved
}

// Vote increments one of the vote counters by exactly one. There is no
// duplicate-vote detection and no upper bound. Returns false when the id
// is unknown.
func (s *FeedbackStore) Vote(id string, helpful bool) bool {
	s.mu.Lock()
	var voted *models.Feedback
	for i := range s.items {
		if s.items[i].ID == id {
			if helpful {
				s.items[i].Helpful++
			} else {
				s.items[i].NotHelpful++
			}
			voted = &s.items[i]
			break
		}
	}
	var h, nh int
	if voted != nil {
		h, nh = voted.Helpful, voted.NotHelpful
	}
	s.mu.Unlock()

	if voted == nil {
		return false
	}
	s.backend.UpdateFeedbackVotes(id, h, nh)
	return true
}

// All returns a copy of the collection, newest first.
func (s *FeedbackStore) All() []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Feedback, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given id.
func (s *FeedbackStore) Get(id string) (models.Feedback, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.items {
		if f.ID == id {
			return f, true
		}
	}
	return models.Feedback{}, false
}

// AverageRating returns the arithmetic mean of all ratings rounded to one
// decimal, or 0 when the collection is empty.
func (s *FeedbackStore) AverageRating() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return 0
	}
	sum := 0
	for _, f := range s.items {
		sum += f.Rating
	}
	avg := float64(sum) / float64(len(s.items))
	return math.Round(avg*10) / 10
}
