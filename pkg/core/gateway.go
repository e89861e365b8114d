package core

import "context"

// Gateway defines the contract for the scoped persistence layer.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem today, anything path-addressable tomorrow)
// and lets tests inject a gateway rooted in a temporary directory.
type Gateway interface {
	// Initialize ensures the underlying storage is ready (e.g., create the data root).
	Initialize(ctx context.Context) error

	// SaveChartState persists an opaque state blob under the given source id,
	// fully overwriting any previous blob for that id.
	SaveChartState(ctx context.Context, sourceID, state string) error

	// LoadChartState retrieves the blob stored under the given source id.
	// Returns ErrNotFound if no state was ever saved for it.
	LoadChartState(ctx context.Context, sourceID string) (string, error)

	// ListChartStates returns the sanitized ids of all stored chart states, sorted.
	ListChartStates(ctx context.Context) ([]string, error)

	// SaveStickyNotes replaces the entire persisted collection with notes.
	SaveStickyNotes(ctx context.Context, notes []StickyNote) error

	// LoadStickyNotes returns the persisted collection in saved order.
	// A data root with no collection yet yields an empty slice, not an error.
	LoadStickyNotes(ctx context.Context) ([]StickyNote, error)
}

// Watchable defines an interface for gateways that can observe external
// changes to their persisted records.
type Watchable interface {
	// Watch emits events for records whose path matches pattern
	// (doublestar syntax, e.g. "Drawings/*" or "**").
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
