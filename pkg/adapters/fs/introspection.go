package fs

import (
	"github.com/aretw0/introspection"
)

// GatewayState exposes internal state for observability.
type GatewayState struct {
	Root          string `json:"root"`
	AutoInit      bool   `json:"auto_init"`
	MustExist     bool   `json:"must_exist"`
	EventBuffer   int    `json:"event_buffer"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (g *Gateway) State() any {
	g.mu.RLock()
	defer g.mu.RUnlock()

	buffer := g.config.EventBuffer
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}

	return GatewayState{
		Root:          g.Root,
		AutoInit:      g.config.AutoInit,
		MustExist:     g.config.MustExist,
		EventBuffer:   buffer,
		WatcherActive: g.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (g *Gateway) ComponentType() string {
	return "fs-gateway"
}

var _ introspection.Introspectable = (*Gateway)(nil)
var _ introspection.Component = (*Gateway)(nil)

func (g *Gateway) setWatcherActive(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watcherActive = active
}
