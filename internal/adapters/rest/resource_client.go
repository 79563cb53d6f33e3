package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
	"github.com/SscSPs/estate_admin_console/internal/utils/pagination"
)

// Envelope describes where a list endpoint puts its items and pagination.
type Envelope int

const (
	// EnvelopeTopLevel is {"data": [...], "pagination": {...}}.
	EnvelopeTopLevel Envelope = iota
	// EnvelopeNested is {"data": {"<ItemsKey>": [...], "pagination": {...}}}.
	EnvelopeNested
)

// ResourceConfig binds a record type to its backend endpoint.
type ResourceConfig struct {
	// Name is used in error messages, e.g. "accounts".
	Name     string
	Path     string
	Envelope Envelope
	// ItemsKey names the items array inside a nested envelope.
	ItemsKey string
}

// ResourceClient implements ports.ResourceService over the REST contract
// GET/POST /{resource} and GET/PUT/DELETE /{resource}/{id}.
type ResourceClient[T domain.Record] struct {
	client *Client
	cfg    ResourceConfig
}

var _ ports.ResourceService[domain.BankAccount] = (*ResourceClient[domain.BankAccount])(nil)

// NewResourceClient creates a client for one resource.
func NewResourceClient[T domain.Record](client *Client, cfg ResourceConfig) *ResourceClient[T] {
	return &ResourceClient[T]{client: client, cfg: cfg}
}

// listEnvelope captures both wire shapes before normalization.
type listEnvelope struct {
	Data       json.RawMessage    `json:"data"`
	Pagination *domain.Pagination `json:"pagination"`
}

func (rc *ResourceClient[T]) List(ctx context.Context, q domain.ListQuery) (domain.Page[T], error) {
	var env listEnvelope
	err := rc.client.do(ctx, request{
		method:   http.MethodGet,
		path:     rc.cfg.Path,
		query:    pagination.Values(q),
		resource: rc.cfg.Name,
	}, &env)
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("list %s: %w", rc.cfg.Name, err)
	}

	items, pg, err := rc.unwrap(env)
	if err != nil {
		return domain.Page[T]{}, &apperrors.ServerError{Status: http.StatusOK, Message: fmt.Sprintf("unreadable %s list: %v", rc.cfg.Name, err)}
	}

	page := domain.Page[T]{Data: items, Pagination: pagination.Normalize(pg, q, len(items))}
	if pg != nil && (!pagination.Consistent(*pg) || len(items) > pg.ItemsPerPage) {
		rc.client.logger.Warn("Backend sent inconsistent pagination, normalized",
			slog.String("resource", rc.cfg.Name),
			slog.Int("received", len(items)),
			slog.Int("total_items", pg.TotalItems),
			slog.Int("total_pages", pg.TotalPages),
			slog.Int("items_per_page", pg.ItemsPerPage),
		)
	}
	return page, nil
}

func (rc *ResourceClient[T]) unwrap(env listEnvelope) ([]T, *domain.Pagination, error) {
	items := []T{}
	if len(bytes.TrimSpace(env.Data)) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return items, env.Pagination, nil
	}

	switch rc.cfg.Envelope {
	case EnvelopeNested:
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(env.Data, &inner); err != nil {
			return nil, nil, err
		}
		if raw, ok := inner[rc.cfg.ItemsKey]; ok {
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, nil, err
			}
		}
		pg := env.Pagination
		if raw, ok := inner["pagination"]; ok {
			pg = &domain.Pagination{}
			if err := json.Unmarshal(raw, pg); err != nil {
				return nil, nil, err
			}
		}
		return items, pg, nil
	default:
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, nil, err
		}
		return items, env.Pagination, nil
	}
}

func (rc *ResourceClient[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	rec, err := rc.record(ctx, request{method: http.MethodGet, path: rc.itemPath(id), resource: rc.cfg.Name, id: id})
	if err != nil {
		return zero, fmt.Errorf("get %s %s: %w", rc.cfg.Name, id, err)
	}
	return rec, nil
}

func (rc *ResourceClient[T]) Create(ctx context.Context, payload any) (T, error) {
	var zero T
	rec, err := rc.record(ctx, request{method: http.MethodPost, path: rc.cfg.Path, body: payload, resource: rc.cfg.Name})
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", rc.cfg.Name, err)
	}
	return rec, nil
}

func (rc *ResourceClient[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	var zero T
	rec, err := rc.record(ctx, request{method: http.MethodPut, path: rc.itemPath(id), body: patch, resource: rc.cfg.Name, id: id})
	if err != nil {
		return zero, fmt.Errorf("update %s %s: %w", rc.cfg.Name, id, err)
	}
	return rec, nil
}

func (rc *ResourceClient[T]) Delete(ctx context.Context, id string) error {
	err := rc.client.do(ctx, request{method: http.MethodDelete, path: rc.itemPath(id), resource: rc.cfg.Name, id: id}, nil)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", rc.cfg.Name, id, err)
	}
	return nil
}

// record performs a single-record call. The backend answers either with the
// bare record or with {"data": record}.
func (rc *ResourceClient[T]) record(ctx context.Context, r request) (T, error) {
	var zero T
	var raw json.RawMessage
	if err := rc.client.do(ctx, r, &raw); err != nil {
		return zero, err
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	body := raw
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		trimmed := bytes.TrimSpace(wrapped.Data)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			body = trimmed
		}
	}

	var rec T
	if err := json.Unmarshal(body, &rec); err != nil {
		return zero, &apperrors.ServerError{Status: http.StatusOK, Message: fmt.Sprintf("unreadable %s record: %v", rc.cfg.Name, err)}
	}
	return rec, nil
}

func (rc *ResourceClient[T]) itemPath(id string) string {
	return rc.cfg.Path + "/" + url.PathEscape(id)
}
