package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks, either
// on the client before dispatch or on the backend.
var ErrValidation = errors.New("validation error")

// ErrNetwork indicates the backend produced no response at all.
var ErrNetwork = errors.New("network error")

// ErrUnauthenticated indicates no valid operator session is available.
var ErrUnauthenticated = errors.New("not authenticated")

// NetworkError wraps a transport failure where no HTTP response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ServerError is a non-2xx response. Message is empty when the body carried none.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server responded %d", e.Status)
}

// ValidationError is a 4xx response carrying field keyed errors.
type ValidationError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if msg := e.FirstFieldError(); msg != "" {
		return "validation failed: " + msg
	}
	return "validation failed"
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// FirstFieldError returns the first message of the alphabetically first field.
func (e *ValidationError) FirstFieldError() string {
	fields := make([]string, 0, len(e.Fields))
	for f, msgs := range e.Fields {
		if len(msgs) > 0 {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return ""
	}
	sort.Strings(fields)
	return e.Fields[fields[0]][0]
}

// NotFoundError is returned for a 404 on get, update or delete of an id.
type NotFoundError struct {
	Resource string
	ID       string
	Message  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// FormError reports client side validation failures. It never reaches the network layer.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = e.Fields[f]
	}
	return strings.Join(parts, "; ")
}

func (e *FormError) Is(target error) bool { return target == ErrValidation }

// Normalize reduces any error to one human readable message. Precedence:
// server message, first validation error, HTTP status text, fallback.
// Transport failures always produce the fallback.
func Normalize(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var formErr *FormError
	if errors.As(err, &formErr) {
		if msg := formErr.Error(); msg != "" {
			return msg
		}
		return fallback
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		if valErr.Message != "" {
			return valErr.Message
		}
		if msg := valErr.FirstFieldError(); msg != "" {
			return msg
		}
		return statusTextOr(valErr.Status, fallback)
	}

	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		if nfErr.Message != "" {
			return nfErr.Message
		}
		return statusTextOr(http.StatusNotFound, fallback)
	}

	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		if srvErr.Message != "" {
			return srvErr.Message
		}
		return statusTextOr(srvErr.Status, fallback)
	}

	return fallback
}

func statusTextOr(status int, fallback string) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fallback
}
