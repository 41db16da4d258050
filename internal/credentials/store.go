// Package credentials holds the single user-supplied API secret that gates
// calls to the external analysis service.
package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Credential is the opaque secret plus its last known validation state.
type Credential struct {
	Value     string
	Validated bool
}

// Store owns the credential. It persists the raw secret to a single local
// file and keeps the validation flag in memory only; a restarted process
// must re-probe before the credential counts as valid.
type Store struct {
	mu        sync.RWMutex
	path      string
	secret    string
	validated bool
}

// NewStore constructs a Store backed by the given file path and loads any
// previously persisted secret. The loaded secret starts out unvalidated.
func NewStore(path string) *Store {
	s := &Store{path: path}
	if raw, err := os.ReadFile(path); err == nil {
		s.secret = strings.TrimSpace(string(raw))
	}
	return s
}

// Set persists a trimmed non-empty secret and resets the validation flag.
// An empty secret clears the store instead.
func (s *Store) Set(secret string) error {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return s.Clear()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("credential store: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(trimmed+"\n"), 0o600); err != nil {
		return fmt.Errorf("credential store: %w", err)
	}
	s.secret = trimmed
	s.validated = false
	return nil
}

// Get returns the current credential, if any.
func (s *Store) Get() (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.secret == "" {
		return Credential{}, false
	}
	return Credential{Value: s.secret, Validated: s.validated}, true
}

// Clear removes the persisted secret and resets validity. Clearing an
// already-empty store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("credential store: %w", err)
	}
	s.secret = ""
	s.validated = false
	return nil
}

// MarkValidated records the outcome of a validation probe.
func (s *Store) MarkValidated(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.secret == "" {
		return
	}
	s.validated = ok
}

// Validated reports whether the held credential passed its last probe.
func (s *Store) Validated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secret != "" && s.validated
}
