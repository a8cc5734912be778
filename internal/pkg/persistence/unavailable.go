package persistence

import (
	"context"
	"errors"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// ErrRemoteUnavailable is returned by the Unavailable* remotes for every call.
var ErrRemoteUnavailable = errors.New("remote store unavailable")

// UnavailableComplaintRemote fails every call. The adapter is built with the
// Unavailable* remotes when the database never came up, which forces all
// reads and writes onto the local JSON store.
type UnavailableComplaintRemote struct{}

func (UnavailableComplaintRemote) Insert(context.Context, *models.Complaint) error {
	return ErrRemoteUnavailable
}

func (UnavailableComplaintRemote) List(context.Context) ([]models.Complaint, error) {
	return nil, ErrRemoteUnavailable
}

func (UnavailableComplaintRemote) UpdateStatus(context.Context, string, string) error {
	return ErrRemoteUnavailable
}

func (UnavailableComplaintRemote) Delete(context.Context, string) error {
	return ErrRemoteUnavailable
}

// UnavailableFeedbackRemote fails every call.
type UnavailableFeedbackRemote struct{}

func (UnavailableFeedbackRemote) Insert(context.Context, *models.Feedback) error {
	return ErrRemoteUnavailable
}

func (UnavailableFeedbackRemote) List(context.Context) ([]models.Feedback, error) {
	return nil, ErrRemoteUnavailable
}

func (UnavailableFeedbackRemote) UpdateVotes(context.Context, string, int, int) error {
	return ErrRemoteUnavailable
}

// UnavailableConfigRemote fails every call.
type UnavailableConfigRemote struct{}

func (UnavailableConfigRemote) LoadSettings(context.Context) (*models.AppSettings, error) {
	return nil, ErrRemoteUnavailable
}

func (UnavailableConfigRemote) SaveSettings(context.Context, *models.AppSettings) error {
	return ErrRemoteUnavailable
}

func (UnavailableConfigRemote) LoadAdminProfile(context.Context) (*models.AdminProfile, error) {
	return nil, ErrRemoteUnavailable
}

func (UnavailableConfigRemote) SaveAdminProfile(context.Context, *models.AdminProfile) error {
	return ErrRemoteUnavailable
}
