package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/transhub/shuttletrack/internal/pkg/jwt"
	"github.com/transhub/shuttletrack/internal/pkg/models"
)

// Session is the locally persisted sign-in state. The zero value (returned
// by Default) means "not authenticated".
type Session struct {
	Authenticated bool            `json:"authenticated"`
	Token         string          `json:"token,omitempty"`
	Role          string          `json:"role,omitempty"`
	Account       *models.Account `json:"account,omitempty"`
}

// Default returns the unauthenticated session
func Default() Session {
	return Session{}
}

// ExpiresWithin reports whether the session's token is absent, unreadable,
// or due to expire inside the window. Callers treat a true result as a
// prompt to sign in again rather than run into 401s.
func (s Session) ExpiresWithin(window time.Duration) bool {
	if s.Token == "" {
		return true
	}
	claims, err := jwt.PeekClaims(s.Token)
	if err != nil {
		return true
	}
	return jwt.ExpiresSoon(claims, window)
}

// Store persists the session as JSON at a fixed path. It replaces ad-hoc
// "parse the blob, fall back on error" handling with one load/save contract:
// Load never fails on a missing or corrupt file, it returns Default.
type Store struct {
	path string
}

// NewStore creates a session store at the given path. An empty path picks
// a per-user default under the OS config directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		path = filepath.Join(configDir, "shuttletrack", "session.json")
	}
	return &Store{path: path}, nil
}

// Load reads the persisted session, returning Default when the file is
// missing or unreadable.
func (s *Store) Load() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Default()
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Default()
	}
	return sess
}

// Save persists the session, creating the parent directory when needed.
// The file is written 0600 since it holds a bearer token.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
