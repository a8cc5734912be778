package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The store must come up even when no Redis server is reachable; the
// storage layer then degrades to the in-memory default instead of
// panicking at startup.
func TestNewSessionStoreSurvivesMissingRedis(t *testing.T) {
	store := NewSessionStore()

	require.NotNil(t, store)
	assert.Same(t, store, GetSessionStore())
}
