package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
	"golang.org/x/oauth2"
)

// Manager holds the active operator session in memory, backed by a
// SessionStore. It is the process wide state shared by every screen and the
// token source of the backend client.
type Manager struct {
	mu      sync.RWMutex
	store   ports.SessionStore
	current *domain.Session
	now     func() time.Time
	logger  *slog.Logger
}

var _ oauth2.TokenSource = (*Manager)(nil)

// NewManager restores a previously saved session. An unreadable or expired
// session file is discarded.
func NewManager(store ports.SessionStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{store: store, now: time.Now, logger: logger}

	sess, err := store.Load()
	if err != nil {
		logger.Warn("Discarding unreadable session", slog.String("error", err.Error()))
		_ = store.Clear()
		return m
	}
	if sess != nil && !sess.Expired(m.now()) {
		m.current = sess
		logger.Info("Restored operator session", slog.String("user_id", sess.User.ID))
	}
	return m
}

// Set replaces the active session and persists it.
func (m *Manager) Set(sess domain.Session) error {
	if err := m.store.Save(sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()
	return nil
}

// Clear logs the operator out.
func (m *Manager) Clear() error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return m.store.Clear()
}

// Current returns a copy of the active, unexpired session.
func (m *Manager) Current() (*domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil || m.current.Expired(m.now()) {
		return nil, false
	}
	sess := *m.current
	return &sess, true
}

// Token implements oauth2.TokenSource for the backend client.
func (m *Manager) Token() (*oauth2.Token, error) {
	sess, ok := m.Current()
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return &oauth2.Token{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
		Expiry:      sess.ExpiresAt,
	}, nil
}
