// Package persistence implements the two-tier write path for complaint and
// feedback records: a remote database is the primary store, and a JSON-file
// local store absorbs every remote failure. Callers never see an error from
// this layer; a record always lands somewhere. Remote and local data are
// never merged — each call independently uses one tier or the other.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/localstore"
)

const DefaultTimeout = 5 * time.Second

// ComplaintRemote is the remote-store contract for the complaints collection.
type ComplaintRemote interface {
	Insert(ctx context.Context, c *models.Complaint) error
	List(ctx context.Context) ([]models.Complaint, error) // created_at DESC
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// FeedbackRemote is the remote-store contract for the feedbacks collection.
type FeedbackRemote interface {
	Insert(ctx context.Context, f *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error) // created_at DESC
	UpdateVotes(ctx context.Context, id string, helpful, notHelpful int) error
}

// ConfigRemote is the remote-store contract for the configuration records.
type ConfigRemote interface {
	LoadSettings(ctx context.Context) (*models.AppSettings, error)
	SaveSettings(ctx context.Context, settings *models.AppSettings) error
	LoadAdminProfile(ctx context.Context) (*models.AdminProfile, error)
	SaveAdminProfile(ctx context.Context, profile *models.AdminProfile) error
}

type Adapter struct {
	complaints ComplaintRemote
	feedbacks  FeedbackRemote
	config     ConfigRemote
	local      *localstore.Store
	timeout    time.Duration
}

// New creates a persistence adapter. A timeout of zero selects DefaultTimeout;
// every remote call is bounded by it so a dead database cannot hang a request.
func New(complaints ComplaintRemote, feedbacks FeedbackRemote, config ConfigRemote, local *localstore.Store, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Adapter{
		complaints: complaints,
		feedbacks:  feedbacks,
		config:     config,
		local:      local,
		timeout:    timeout,
	}
}

func (a *Adapter) remoteCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.timeout)
}

// SaveComplaint inserts a complaint remotely, falling back to the local list
// on any failure. The record is returned unchanged either way.
func (a *Adapter) SaveComplaint(c models.Complaint) models.Complaint {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	if err := a.complaints.Insert(ctx, &c); err != nil {
		log.Warnf("[Persistence] remote insert of complaint %s failed, using local store: %v", c.ID, err)
		list := a.localComplaints()
		a.writeLocalComplaints(append([]models.Complaint{c}, list...))
	}
	return c
}

// LoadComplaints returns the remote collection ordered newest first, or the
// local list when the remote store is unreachable. Never nil.
func (a *Adapter) LoadComplaints() []models.Complaint {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	list, err := a.complaints.List(ctx)
	if err != nil {
		log.Warnf("[Persistence] remote complaint query failed, using local store: %v", err)
		return a.localComplaints()
	}
	if list == nil {
		list = []models.Complaint{}
	}
	return list
}

// UpdateComplaintStatus writes a status change through to the remote store,
// patching the local list instead when the remote write fails.
func (a *Adapter) UpdateComplaintStatus(id, status string) {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	if err := a.complaints.UpdateStatus(ctx, id, status); err != nil {
		log.Warnf("[Persistence] remote status update for %s failed, patching local store: %v", id, err)
		list := a.localComplaints()
		for i := range list {
			if list[i].ID == id {
				list[i].Status = status
				break
			}
		}
		a.writeLocalComplaints(list)
	}
}

// DeleteComplaint removes a complaint remotely, or from the local list when
// the remote delete fails.
func (a *Adapter) DeleteComplaint(id string) {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	if err := a.complaints.Delete(ctx, id); err != nil {
		log.Warnf("[Persistence] remote delete of %s failed, patching local store: %v", id, err)
		list := a.localComplaints()
		kept := list[:0]
		for _, c := range list {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		a.writeLocalComplaints(kept)
	}
}

// SaveFeedback inserts a feedback record remotely with local fallback.
func (a *Adapter) SaveFeedback(f models.Feedback) models.Feedback {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	if err := a.feedbacks.Insert(ctx, &f); err != nil {
		log.Warnf("[Persistence] remote insert of feedback %s failed, using local store: %v", f.ID, err)
		list := a.localFeedbacks()
		a.writeLocalFeedbacks(append([]models.Feedback{f}, list...))
	}
	return f
}

// LoadFeedbacks returns the remote feedback collection newest first, or the
// local list when the remote store is unreachable. Never nil.
func (a *Adapter) LoadFeedbacks() []models.Feedback {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	list, err := a.feedbacks.List(ctx)
	if err != nil {
		log.Warnf("[Persistence] remote feedback query failed, using local store: %v", err)
		return a.localFeedbacks()
	}
	if list == nil {
		list = []models.Feedback{}
	}
	return list
}

// UpdateFeedbackVotes writes the vote counters through to the remote store,
// patching the local list when the remote write fails.
func (a *Adapter) UpdateFeedbackVotes(id string, helpful, notHelpful int) {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	if err := a.feedbacks.UpdateVotes(ctx, id, helpful, notHelpful); err != nil {
		log.Warnf("[Persistence] remote vote update for %s failed, patching local store: %v", id, err)
		list := a.localFeedbacks()
		for i := range list {
			if list[i].ID == id {
				list[i].Helpful = helpful
				list[i].NotHelpful = notHelpful
				break
			}
		}
		a.writeLocalFeedbacks(list)
	}
}

// LoadSettings returns the stored system settings, preferring the remote
// store, then the local copy, then the defaults.
func (a *Adapter) LoadSettings() *models.AppSettings {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	settings, err := a.config.LoadSettings(ctx)
	if err == nil {
		return settings
	}
	log.Warnf("[Persistence] remote settings load failed, using local store: %v", err)

	local := &models.AppSettings{}
	if err := a.local.Read(localstore.KeySystemSettings, local); err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Errorf("[Persistence] local settings read failed: %v", err)
		}
		return models.DefaultSettings()
	}
	return local
}

// SaveSettings persists the settings remotely with local fallback.
func (a *Adapter) SaveSettings(settings *models.AppSettings) {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	if err := a.config.SaveSettings(ctx, settings); err != nil {
		log.Warnf("[Persistence] remote settings save failed, using local store: %v", err)
		if err := a.local.Write(localstore.KeySystemSettings, settings); err != nil {
			log.Errorf("[Persistence] local settings write failed: %v", err)
		}
	}
}

// LoadAdminProfile returns the stored admin profile, preferring the remote
// store, then the local copy, then the defaults.
func (a *Adapter) LoadAdminProfile() models.AdminProfile {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	profile, err := a.config.LoadAdminProfile(ctx)
	if err == nil {
		return *profile
	}
	log.Warnf("[Persistence] remote profile load failed, using local store: %v", err)

	var local models.AdminProfile
	if err := a.local.Read(localstore.KeyAdminProfile, &local); err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Errorf("[Persistence] local profile read failed: %v", err)
		}
		return models.DefaultAdminProfile()
	}
	return local
}

// SaveAdminProfile persists the admin profile remotely with local fallback.
func (a *Adapter) SaveAdminProfile(profile models.AdminProfile) {
	ctx, cancel := a.remoteCtx()
	defer cancel()

	if err := a.config.SaveAdminProfile(ctx, &profile); err != nil {
		log.Warnf("[Persistence] remote profile save failed, using local store: %v", err)
		if err := a.local.Write(localstore.KeyAdminProfile, &profile); err != nil {
			log.Errorf("[Persistence] local profile write failed: %v", err)
		}
	}
}

func (a *Adapter) localComplaints() []models.Complaint {
	var list []models.Complaint
	if err := a.local.Read(localstore.KeyComplaints, &list); err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Errorf("[Persistence] local complaint read failed: %v", err)
		}
		return []models.Complaint{}
	}
	return list
}

func (a *Adapter) writeLocalComplaints(list []models.Complaint) {
	if err := a.local.Write(localstore.KeyComplaints, list); err != nil {
		log.Errorf("[Persistence] local complaint write failed: %v", err)
	}
}

func (a *Adapter) localFeedbacks() []models.Feedback {
	var list []models.Feedback
	if err := a.local.Read(localstore.KeyFeedbacks, &list); err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Errorf("[Persistence] local feedback read failed: %v", err)
		}
		return []models.Feedback{}
	}
	return list
}

func (a *Adapter) writeLocalFeedbacks(list []models.Feedback) {
	if err := a.local.Write(localstore.KeyFeedbacks, list); err != nil {
		log.Errorf("[Persistence] local feedback write failed: %v", err)
	}
}
