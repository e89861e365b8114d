package platform

import (
	"log/slog"

	"github.com/redpill/charting/pkg/core"
)

// options holds the internal configuration for the charting service.
type options struct {
	gateway     core.Gateway
	logger      *slog.Logger
	dataRoot    string
	autoInit    bool
	mustExist   bool
	eventBuffer int
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoInit: true,
	}
}

// WithLogger sets the logger for the service and its gateway.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDataRoot overrides the OS-resolved data root with an explicit directory.
// This is how tests run against a temporary directory instead of the real
// per-user application data location.
func WithDataRoot(root string) Option {
	return func(o *options) {
		o.dataRoot = root
	}
}

// WithGateway allows injecting a custom persistence gateway (e.g. a mock).
// If provided, the default filesystem gateway is skipped entirely.
func WithGateway(gw core.Gateway) Option {
	return func(o *options) {
		o.gateway = gw
	}
}

// WithAutoInit controls eager creation of the data root during construction.
// Enabled by default; disabling it defers all directory creation to the first
// write.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist ensures the data root must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithEventBuffer allows specifying the size of the watch channel buffer.
// Zero means default.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
