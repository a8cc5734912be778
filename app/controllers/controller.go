package controllers

import (
	"github.com/go-playground/validator/v10"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/persistence"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/store"
)

var (
	persist        *persistence.Adapter
	complaintStore *store.ComplaintStore
	feedbackStore  *store.FeedbackStore

	validate = validator.New()
)

// Initialize wires the controllers to the persistence adapter and loads the
// session collections and settings. Must be called before routes are served.
func Initialize(adapter *persistence.Adapter) {
	persist = adapter
	complaintStore = store.NewComplaintStore(adapter)
	feedbackStore = store.NewFeedbackStore(adapter)

	complaintStore.Load()
	feedbackStore.Load()
	models.SetAppSettings(adapter.LoadSettings())
}

// GetComplaintStore exposes the complaint collection to other packages
// (router installation, tests).
func GetComplaintStore() *store.ComplaintStore {
	return complaintStore
}

// GetFeedbackStore exposes the feedback collection.
func GetFeedbackStore() *store.FeedbackStore {
	return feedbackStore
}
