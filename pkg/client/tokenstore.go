// Package client is the client-side half of the event planner: a typed API
// client over the REST surface plus the session state it keeps between runs.
package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed key the persisted token lives under.
const tokenFileName = "token"

// TokenStore persists the session token between runs. The zero value is not
// usable; construct with NewTokenStore.
type TokenStore struct {
	path string
}

// NewTokenStore stores the token under dir. If dir is empty, a directory
// under the user config dir is used.
func NewTokenStore(dir string) (*TokenStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "event-planner")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &TokenStore{path: filepath.Join(dir, tokenFileName)}, nil
}

// Save writes the token, replacing any previous one.
func (s *TokenStore) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Load returns the persisted token, or "" if none is stored.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the persisted token. Clearing an already-empty store is not
// an error.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
