package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// Credentials is the durable session state: the bearer token plus the
// identity it was minted for. The refresh credential is never stored here;
// it lives in the HTTP client's cookie jar.
type Credentials struct {
	AccessToken string      `json:"accessToken"`
	Role        models.Role `json:"role"`
	Username    string      `json:"username"`
}

// Identity is the caller-visible part of the credentials.
type Identity struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// CredStore persists credentials as a JSON file. Writes go through a temp
// file and a rename so a crash never leaves a half-written store behind.
type CredStore struct {
	mu   sync.RWMutex
	path string
}

// NewCredStore creates a store backed by the given file path.
func NewCredStore(path string) *CredStore {
	return &CredStore{path: path}
}

// Load reads the stored credentials. A missing file means no session and
// returns nil without error.
func (s *CredStore) Load() (*Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credential store: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credential store: %w", err)
	}
	if creds.AccessToken == "" {
		return nil, nil
	}

	return &creds, nil
}

// Save atomically replaces the stored credentials.
func (s *CredStore) Save(creds *Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".creds-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp store: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set store permissions: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace credential store: %w", err)
	}

	return nil
}

// Clear removes the stored credentials. Clearing an empty store is fine.
func (s *CredStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear credential store: %w", err)
	}
	return nil
}
