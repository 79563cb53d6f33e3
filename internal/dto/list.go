package dto

import "github.com/SscSPs/estate_admin_console/internal/core/domain"

// ListResponse is a screen's state after a fetch plus the figures shown above it.
type ListResponse[T any] struct {
	domain.ResourceState[T]
	Summary      []domain.Figure `json:"summary"`
	SummaryError string          `json:"summaryError,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
