package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transhub/shuttletrack/internal/pkg/jwt"
	"github.com/transhub/shuttletrack/internal/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	store := newTestStore(t)

	sess := store.Load()
	assert.Equal(t, Default(), sess)
	assert.False(t, sess.Authenticated)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	saved := Session{
		Authenticated: true,
		Token:         "tok-123",
		Role:          models.RoleDriver,
		Account: &models.Account{
			ID:       uuid.New(),
			Email:    "driver@example.com",
			FullName: "Pat Driver",
			Role:     models.RoleDriver,
		},
	}
	require.NoError(t, store.Save(saved))

	loaded := store.Load()
	assert.True(t, loaded.Authenticated)
	assert.Equal(t, saved.Token, loaded.Token)
	assert.Equal(t, saved.Role, loaded.Role)
	require.NotNil(t, loaded.Account)
	assert.Equal(t, saved.Account.Email, loaded.Account.Email)
}

func TestLoad_CorruptFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	assert.Equal(t, Default(), store.Load())
}

func TestSession_ExpiresWithin(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "shuttletrack-test"}

	token, _, err := jwt.GenerateToken(uuid.New(), "driver@example.com", models.RoleDriver, cfg)
	require.NoError(t, err)

	fresh := Session{Authenticated: true, Token: token}
	assert.False(t, fresh.ExpiresWithin(time.Minute))
	assert.True(t, fresh.ExpiresWithin(2*time.Hour))

	// A missing or unreadable token always prompts a fresh sign-in
	assert.True(t, Session{Authenticated: true}.ExpiresWithin(time.Minute))
	assert.True(t, Session{Authenticated: true, Token: "garbage"}.ExpiresWithin(time.Minute))
}

func TestClear_IsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(Session{Authenticated: true, Token: "tok"}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	assert.False(t, store.Load().Authenticated)
}
