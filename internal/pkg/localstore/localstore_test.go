package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	var v doc
	assert.ErrorIs(t, s.Read("vce-missing", &v), ErrNotFound)
}

func TestWriteReadRoundtrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	in := []doc{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, s.Write(KeyComplaints, in))

	var out []doc
	require.NoError(t, s.Read(KeyComplaints, &out))
	assert.Equal(t, in, out)
}

func TestWriteReplacesWholeDocument(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(KeySystemSettings, doc{Name: "first", Count: 1}))
	require.NoError(t, s.Write(KeySystemSettings, doc{Name: "second", Count: 2}))

	var out doc
	require.NoError(t, s.Read(KeySystemSettings, &out))
	assert.Equal(t, doc{Name: "second", Count: 2}, out)
}

func TestDelete(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(KeyFeedbacks, doc{Name: "x"}))
	require.NoError(t, s.Delete(KeyFeedbacks))

	var out doc
	assert.ErrorIs(t, s.Read(KeyFeedbacks, &out), ErrNotFound)

	// deleting an absent key is fine
	assert.NoError(t, s.Delete(KeyFeedbacks))
}
