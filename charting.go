package charting

import (
	"log/slog"

	"github.com/redpill/charting/internal/platform"
	"github.com/redpill/charting/pkg/core"
)

// Version exposes the version of the backend.
// See version.go for the implementation using go:embed.

// --- Types ---

// StickyNote is a public alias for the domain sticky note.
type StickyNote = core.StickyNote

// Position is a public alias for a note's on-screen location.
type Position = core.Position

// Size is a public alias for a note's on-screen dimensions.
type Size = core.Size

// Event is a public alias for a record change event.
type Event = core.Event

// Service is a public alias for the command service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring the backend.
type Option = platform.Option

// WithDataRoot overrides the OS-resolved data root with an explicit directory.
func WithDataRoot(root string) Option {
	return platform.WithDataRoot(root)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithGateway allows injecting a custom persistence gateway.
func WithGateway(gw core.Gateway) Option {
	return platform.WithGateway(gw)
}

// WithAutoInit controls eager creation of the data root.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the data root must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithEventBuffer allows specifying the size of the watch channel buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New creates a new backend Service. Without options, records persist under
// the OS per-user application data directory.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}
