package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/localstore"
)

type fakeComplaintRemote struct {
	items    []models.Complaint
	inserted []string
}

func (f *fakeComplaintRemote) Insert(_ context.Context, c *models.Complaint) error {
	f.inserted = append(f.inserted, c.ID)
	f.items = append([]models.Complaint{*c}, f.items...)
	return nil
}

func (f *fakeComplaintRemote) List(context.Context) ([]models.Complaint, error) {
	return f.items, nil
}

func (f *fakeComplaintRemote) UpdateStatus(_ context.Context, id, status string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
		}
	}
	return nil
}

func (f *fakeComplaintRemote) Delete(_ context.Context, id string) error {
	kept := f.items[:0]
	for _, c := range f.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.items = kept
	return nil
}

func newLocalOnlyAdapter(t *testing.T) (*Adapter, *localstore.Store) {
	t.Helper()
	local, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	a := New(UnavailableComplaintRemote{}, UnavailableFeedbackRemote{}, UnavailableConfigRemote{}, local, 0)
	return a, local
}

func TestSaveComplaintFallsBackToLocal(t *testing.T) {
	a, local := newLocalOnlyAdapter(t)

	first := models.Complaint{ID: "CMP-1", Subject: "one"}
	second := models.Complaint{ID: "CMP-2", Subject: "two"}
	a.SaveComplaint(first)
	a.SaveComplaint(second)

	// newest first in the local list
	var list []models.Complaint
	require.NoError(t, local.Read(localstore.KeyComplaints, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "CMP-2", list[0].ID)
	assert.Equal(t, "CMP-1", list[1].ID)

	got := a.LoadComplaints()
	require.Len(t, got, 2)
	assert.Equal(t, "CMP-2", got[0].ID)
}

func TestLoadComplaintsNeverNil(t *testing.T) {
	a, _ := newLocalOnlyAdapter(t)
	assert.NotNil(t, a.LoadComplaints())
	assert.Empty(t, a.LoadComplaints())
}

func TestUpdateAndDeletePatchLocal(t *testing.T) {
	a, _ := newLocalOnlyAdapter(t)

	a.SaveComplaint(models.Complaint{ID: "CMP-1", Status: models.StatusPending})
	a.SaveComplaint(models.Complaint{ID: "CMP-2", Status: models.StatusPending})

	a.UpdateComplaintStatus("CMP-1", models.StatusResolved)
	got := a.LoadComplaints()
	require.Len(t, got, 2)
	assert.Equal(t, models.StatusResolved, got[1].Status)
	assert.Equal(t, models.StatusPending, got[0].Status)

	a.DeleteComplaint("CMP-2")
	got = a.LoadComplaints()
	require.Len(t, got, 1)
	assert.Equal(t, "CMP-1", got[0].ID)
}

func TestSaveComplaintPrefersRemote(t *testing.T) {
	local, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	remote := &fakeComplaintRemote{}
	a := New(remote, UnavailableFeedbackRemote{}, UnavailableConfigRemote{}, local, 0)

	a.SaveComplaint(models.Complaint{ID: "CMP-1"})

	assert.Equal(t, []string{"CMP-1"}, remote.inserted)

	// nothing written locally on the success path
	var list []models.Complaint
	assert.ErrorIs(t, local.Read(localstore.KeyComplaints, &list), localstore.ErrNotFound)
}

func TestFeedbackFallback(t *testing.T) {
	a, _ := newLocalOnlyAdapter(t)

	a.SaveFeedback(models.Feedback{ID: "FB-1", Rating: 4})
	a.UpdateFeedbackVotes("FB-1", 3, 1)

	got := a.LoadFeedbacks()
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Helpful)
	assert.Equal(t, 1, got[0].NotHelpful)
}

func TestSettingsFallbackToDefaults(t *testing.T) {
	a, _ := newLocalOnlyAdapter(t)

	settings := a.LoadSettings()
	require.NotNil(t, settings)
	assert.Equal(t, models.DefaultSettings().SiteName, settings.SiteName)

	settings.SiteName = "Renamed Campus"
	a.SaveSettings(settings)

	got := a.LoadSettings()
	assert.Equal(t, "Renamed Campus", got.SiteName)
}

func TestAdminProfileFallbackToDefaults(t *testing.T) {
	a, _ := newLocalOnlyAdapter(t)

	profile := a.LoadAdminProfile()
	assert.Equal(t, models.DefaultAdminProfile().Email, profile.Email)

	profile.Name = "New Admin"
	a.SaveAdminProfile(profile)

	got := a.LoadAdminProfile()
	assert.Equal(t, "New Admin", got.Name)
}
