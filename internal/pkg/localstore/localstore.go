// Package localstore is a JSON-file key-value store used as the local
// fallback when the remote database is unreachable. Each key maps to one
// file on disk; values are whole JSON documents, replaced on every write.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Keys mirror the collection keys of the original client-side storage.
const (
	KeyComplaints     = "vce-complaints"
	KeyFeedbacks      = "vce-feedbacks"
	KeyCurrentUser    = "vce-current-user"
	KeyUsers          = "vce-users"
	KeyAdminProfile   = "vce-admin-profile"
	KeySystemSettings = "vce-system-settings"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("localstore: key not found")

type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Read unmarshals the value stored under key into v.
func (s *Store) Read(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("localstore: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("localstore: decode %s: %w", key, err)
	}
	return nil
}

// Write replaces the value stored under key with v. The write goes through
// a temp file and rename so a crash never leaves a half-written document.
func (s *Store) Write(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*")
	if err != nil {
		return fmt.Errorf("localstore: temp file for %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("localstore: close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("localstore: rename %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	// Keys come from the fixed constant set above, but sanitize anyway.
	safe := strings.ReplaceAll(key, string(filepath.Separator), "_")
	return filepath.Join(s.dir, safe+".json")
}
