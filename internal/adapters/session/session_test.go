package session

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))
	require.NoError(t, err)

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)

	want := domain.Session{Token: "tok", User: domain.User{ID: "u1", Name: "Ops"}, ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second)}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.User.ID, got.User.ID)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	got, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_RestoresUnexpiredSession(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, store.Save(domain.Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}))

	m := NewManager(store, quietLogger())

	sess, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "tok", sess.Token)

	tok, err := m.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.Type())
}

func TestManager_IgnoresExpiredSession(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, store.Save(domain.Session{Token: "old", ExpiresAt: time.Now().Add(-time.Minute)}))

	m := NewManager(store, quietLogger())

	_, ok := m.Current()
	assert.False(t, ok)
	_, err = m.Token()
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestManager_DiscardsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store, err := NewFileStore(path)
	require.NoError(t, err)

	m := NewManager(store, quietLogger())

	_, ok := m.Current()
	assert.False(t, ok)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestManager_SetAndClear(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	m := NewManager(store, quietLogger())

	require.NoError(t, m.Set(domain.Session{Token: "new"}))
	sess, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "new", sess.Token)

	restored := NewManager(store, quietLogger())
	_, ok = restored.Current()
	assert.True(t, ok, "session without expiry survives a restart")

	require.NoError(t, m.Clear())
	_, ok = m.Current()
	assert.False(t, ok)
}
