package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"golang.org/x/oauth2"
)

// Config configures the backend client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// TokenSource supplies the bearer token. Nil sends anonymous requests.
	TokenSource oauth2.TokenSource
	// Transport overrides http.DefaultTransport, mainly for tests.
	Transport http.RoundTripper
}

// Client performs JSON requests against the console backend.
// It never retries; every failure is returned to the caller.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient builds a client. Authenticated clients inject the bearer token
// through an oauth2.Transport.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL %q: %w", cfg.BaseURL, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	var rt http.RoundTripper = http.DefaultTransport
	if cfg.Transport != nil {
		rt = cfg.Transport
	}
	if cfg.TokenSource != nil {
		rt = &oauth2.Transport{Source: cfg.TokenSource, Base: rt}
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Transport: rt},
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// request describes one call. Resource and ID are used to build NotFoundError.
type request struct {
	method   string
	path     string
	query    url.Values
	body     any
	resource string
	id       string
}

// errorEnvelope is the error body consumed from the backend.
type errorEnvelope struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func (e errorEnvelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do executes the request and decodes a 2xx body into out when out is not nil.
func (c *Client) do(ctx context.Context, r request, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	op := r.method + " " + r.path
	target := *c.baseURL
	target.Path = c.baseURL.Path + r.path
	if len(r.query) > 0 {
		target.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target.String(), body)
	if err != nil {
		return fmt.Errorf("build %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			return &apperrors.ServerError{Status: http.StatusUnauthorized, Message: "Session expired, please log in again"}
		}
		c.logger.Warn("Backend request failed", slog.String("op", op), slog.String("error", err.Error()))
		return &apperrors.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("Backend request completed",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, payload, r)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &apperrors.ServerError{Status: resp.StatusCode, Message: fmt.Sprintf("unreadable response from %s: %v", op, err)}
	}
	return nil
}

func statusError(status int, payload []byte, r request) error {
	var env errorEnvelope
	// A non JSON error body is treated as carrying no message.
	_ = json.Unmarshal(payload, &env)

	switch {
	case status == http.StatusNotFound && r.id != "":
		return &apperrors.NotFoundError{Resource: r.resource, ID: r.id, Message: env.message()}
	case status >= 400 && status < 500 && len(env.Errors) > 0:
		return &apperrors.ValidationError{Status: status, Message: env.message(), Fields: env.Errors}
	default:
		return &apperrors.ServerError{Status: status, Message: env.message()}
	}
}
