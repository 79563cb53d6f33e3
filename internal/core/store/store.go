package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
	"github.com/SscSPs/estate_admin_console/internal/utils/pagination"
)

// ErrStaleFetch is returned by Fetch when a newer fetch was started before
// this one resolved. Its response was discarded.
var ErrStaleFetch = errors.New("superseded by a newer fetch")

// Messages holds the fallback error strings of one store, e.g.
// "Failed to fetch accounts".
type Messages struct {
	Fetch  string
	Create string
	Update string
	Delete string
}

// MessagesFor builds the standard fallbacks from a plural and singular noun.
func MessagesFor(plural, singular string) Messages {
	return Messages{
		Fetch:  "Failed to fetch " + plural,
		Create: "Failed to create " + singular,
		Update: "Failed to update " + singular,
		Delete: "Failed to delete " + singular,
	}
}

// Config configures a Store.
type Config struct {
	Name           string
	Messages       Messages
	DefaultPerPage int
}

// Store caches the currently loaded page of one resource and reconciles the
// results of CRUD calls into it. It is safe for concurrent use.
//
// Only the most recently started fetch may change records, pagination or the
// loading flag; responses of earlier fetches are discarded. Mutations never
// touch the loading flag.
type Store[T domain.Record] struct {
	cfg     Config
	service ports.ResourceService[T]
	logger  *slog.Logger

	mu        sync.RWMutex
	state     domain.ResourceState[T]
	seq       uint64
	onDeleted []func(id string)
}

// New creates an idle store.
func New[T domain.Record](service ports.ResourceService[T], cfg Config, logger *slog.Logger) *Store[T] {
	if cfg.DefaultPerPage <= 0 {
		cfg.DefaultPerPage = pagination.DefaultPerPage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[T]{
		cfg:     cfg,
		service: service,
		logger:  logger.With(slog.String("store", cfg.Name)),
		state:   domain.ResourceState[T]{Records: []T{}},
	}
}

// Name returns the resource name of the store.
func (s *Store[T]) Name() string { return s.cfg.Name }

// Service exposes the underlying resource service for collection scoped reads
// that must not replace the displayed page.
func (s *Store[T]) Service() ports.ResourceService[T] { return s.service }

// Snapshot returns a copy of the current state.
func (s *Store[T]) Snapshot() domain.ResourceState[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Records = append([]T{}, s.state.Records...)
	if s.state.Pagination != nil {
		pg := *s.state.Pagination
		out.Pagination = &pg
	}
	return out
}

// Fetch loads one page. On success records and pagination are replaced; on
// failure the error is normalized into the state and the previous page is kept.
func (s *Store[T]) Fetch(ctx context.Context, q domain.ListQuery) error {
	q = pagination.Resolve(q, s.cfg.DefaultPerPage)

	s.mu.Lock()
	s.seq++
	token := s.seq
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()

	page, err := s.service.List(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		s.logger.Debug("Discarding stale fetch response", slog.Uint64("token", token), slog.Uint64("latest", s.seq))
		return ErrStaleFetch
	}

	s.state.Loading = false
	if err != nil {
		s.state.Error = apperrors.Normalize(err, s.cfg.Messages.Fetch)
		s.logger.Warn("Fetch failed", slog.String("error", err.Error()))
		return err
	}

	records := page.Data
	if records == nil {
		records = []T{}
	}
	pg := page.Pagination
	s.state.Records = records
	s.state.Pagination = &pg
	return nil
}

// Get reads one record from the backend without touching the cache.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	return s.service.GetByID(ctx, id)
}

// Create posts payload and appends the returned record to the current page.
func (s *Store[T]) Create(ctx context.Context, payload any) (T, error) {
	rec, err := s.service.Create(ctx, payload)
	if err != nil {
		s.fail(err, s.cfg.Messages.Create)
		var zero T
		return zero, err
	}

	s.mu.Lock()
	s.state.Records = append(s.state.Records, rec)
	s.mu.Unlock()
	return rec, nil
}

// Update sends patch and replaces the cached copy with the server's record.
// Records not on the current page are left alone.
func (s *Store[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	rec, err := s.service.Update(ctx, id, patch)
	if err != nil {
		s.fail(err, s.cfg.Messages.Update)
		var zero T
		return zero, err
	}
	s.Replace(rec)
	return rec, nil
}

// Replace swaps the cached record with the same id for rec, if present.
func (s *Store[T]) Replace(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Records {
		if s.state.Records[i].GetID() == rec.GetID() {
			s.state.Records[i] = rec
			return
		}
	}
}

// Delete removes the record from the backend and from the current page, then
// runs the registered cascade hooks.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.service.Delete(ctx, id); err != nil {
		s.fail(err, s.cfg.Messages.Delete)
		return err
	}

	s.RemoveWhere(func(rec T) bool { return rec.GetID() == id })

	s.mu.RLock()
	hooks := append([]func(string){}, s.onDeleted...)
	s.mu.RUnlock()
	for _, hook := range hooks {
		hook(id)
	}
	return nil
}

// RemoveWhere drops every cached record matching pred and returns how many were dropped.
func (s *Store[T]) RemoveWhere(pred func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Records[:0:0]
	removed := 0
	for _, rec := range s.state.Records {
		if pred(rec) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	s.state.Records = kept
	return removed
}

// OnDeleted registers a hook run after a successful Delete. Cross store
// cascades are declared with it.
func (s *Store[T]) OnDeleted(hook func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDeleted = append(s.onDeleted, hook)
}

// CascadeFrom drops cached records of dst whose foreign key matches a record
// deleted from src.
func CascadeFrom[S domain.Record, D domain.Record](src *Store[S], dst *Store[D], foreignKey func(D) string) {
	src.OnDeleted(func(id string) {
		n := dst.RemoveWhere(func(rec D) bool { return foreignKey(rec) == id })
		if n > 0 {
			dst.logger.Debug("Cascaded delete", slog.String("from", src.cfg.Name), slog.String("id", id), slog.Int("removed", n))
		}
	})
}

func (s *Store[T]) fail(err error, fallback string) {
	msg := apperrors.Normalize(err, fallback)
	s.mu.Lock()
	s.state.Error = msg
	s.mu.Unlock()
	s.logger.Warn("Mutation failed", slog.String("error", err.Error()))
}
