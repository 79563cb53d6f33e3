// posthog_client.go wraps the posthog.Client so callers need not care whether
// analytics is configured.
package utils

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultPosthogEndpoint is used when no endpoint is configured.
const DefaultPosthogEndpoint = "https://eu.i.posthog.com"

// PosthogClientWrapper records operator activity. A nil or unconfigured
// wrapper drops every event.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// NewPosthogClient returns an unconfigured wrapper when apiKey is empty.
func NewPosthogClient(apiKey, endpoint string, logger *slog.Logger) (*PosthogClientWrapper, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if apiKey == "" {
		logger.Info("Posthog API key is empty, operator activity is not tracked")
		return &PosthogClientWrapper{logger: logger}, nil
	}
	if endpoint == "" {
		endpoint = DefaultPosthogEndpoint
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("create posthog client: %w", err)
	}
	logger.Info("Tracking operator activity", slog.String("endpoint", endpoint))
	return &PosthogClientWrapper{posthogClient: client, logger: logger}, nil
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

// Enqueue queues one event for the operator identified by distinctID.
func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	if err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		w.logger.Warn("Failed to enqueue event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.posthogClient.Close(); err != nil {
		w.logger.Warn("Failed to flush posthog events", slog.String("error", err.Error()))
	}
}
