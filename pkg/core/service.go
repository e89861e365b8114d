package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"
)

// Service handles the business logic behind the front-end commands.
// Each call is an independent, synchronous unit of work; the service holds no
// mutable state between calls beyond the injected gateway and logger.
type Service struct {
	gw     Gateway
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger falls back to slog.Default.
func NewService(gw Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gw: gw, logger: logger}
}

// Ping is the front-end liveness check. It always returns "pong".
func (s *Service) Ping() string {
	return "pong"
}

// ReadCSV reads a user-selected file verbatim as UTF-8 text.
// The path is trusted to come from an OS file picker and is deliberately not
// sanitized: the caller already has filesystem access through the picker UI.
func (s *Service) ReadCSV(ctx context.Context, path string) (string, error) {
	s.logger.Info("reading csv file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrFileRead, path)
	}
	return string(data), nil
}

// SaveChartState persists an opaque state blob for one charted data source.
// The blob is expected to be JSON but passes through unvalidated.
func (s *Service) SaveChartState(ctx context.Context, sourceID, state string) error {
	if sourceID == "" {
		return errors.New("source id cannot be empty")
	}
	return s.gw.SaveChartState(ctx, sourceID, state)
}

// LoadChartState retrieves the blob saved for one charted data source.
func (s *Service) LoadChartState(ctx context.Context, sourceID string) (string, error) {
	if sourceID == "" {
		return "", errors.New("source id cannot be empty")
	}
	return s.gw.LoadChartState(ctx, sourceID)
}

// ListChartStates returns the sanitized ids of all persisted chart states.
func (s *Service) ListChartStates(ctx context.Context) ([]string, error) {
	return s.gw.ListChartStates(ctx)
}

// SaveStickyNotes replaces the whole persisted collection with notes.
// There are no partial updates: the array written is exactly the array given,
// in the given order.
func (s *Service) SaveStickyNotes(ctx context.Context, notes []StickyNote) error {
	return s.gw.SaveStickyNotes(ctx, notes)
}

// LoadStickyNotes returns the persisted collection, or an empty slice when
// nothing has ever been saved.
func (s *Service) LoadStickyNotes(ctx context.Context) ([]StickyNote, error) {
	return s.gw.LoadStickyNotes(ctx)
}

// Watch observes changes in the data root if the gateway supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.gw.(Watchable)
	if !ok {
		return nil, errors.New("gateway does not support watching")
	}
	return w.Watch(ctx, pattern)
}
