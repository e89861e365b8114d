package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/redpill/charting/pkg/core"
)

const (
	// DrawingsDirName holds one JSON blob per charted data source.
	DrawingsDirName = "Drawings"

	// StickyNotesDirName holds the single sticky notes collection file.
	StickyNotesDirName = "StickyNotes"

	// StickyNotesFileName is the fixed collection file name.
	StickyNotesFileName = "sticky_notes.json"
)

// Gateway implements core.Gateway on the local filesystem.
// All records live under a single data root; paths are rebuilt on every call
// and no state is cached between calls.
type Gateway struct {
	Root   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem gateway.
type Config struct {
	Root        string // data root, e.g. <config dir>/RedPillCharting/Database
	AutoInit    bool   // create the data root eagerly during Initialize
	MustExist   bool   // refuse to operate on a missing data root
	EventBuffer int    // watch channel buffer, 0 means default
	Logger      *slog.Logger
}

// NewGateway creates a new filesystem-backed persistence gateway.
func NewGateway(config Config) *Gateway {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Gateway{
		Root:   config.Root,
		config: config,
	}
}

// Initialize performs the necessary setup for the gateway.
// Subordinate directories (Drawings, StickyNotes) are still created lazily by
// the writers that need them.
func (g *Gateway) Initialize(ctx context.Context) error {
	if g.config.MustExist {
		info, err := os.Stat(g.Root)
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: data root does not exist: %s", core.ErrPersistence, g.Root)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", core.ErrPersistence, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: data root is not a directory: %s", core.ErrPersistence, g.Root)
		}
		return nil
	}

	if g.config.AutoInit {
		if err := os.MkdirAll(g.Root, 0755); err != nil {
			return fmt.Errorf("%w: failed to create data root: %w", core.ErrPersistence, err)
		}
	}

	return nil
}

// SaveChartState persists an opaque state blob for one source id.
//
// Workflow:
//  1. Ensure the Drawings directory exists.
//  2. Sanitize the source id so the target path cannot escape Drawings.
//  3. Write the blob atomically, fully overwriting any previous file.
func (g *Gateway) SaveChartState(ctx context.Context, sourceID, state string) error {
	dir := filepath.Join(g.Root, DrawingsDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create drawings directory: %w", core.ErrPersistence, err)
	}

	path := filepath.Join(dir, SanitizeID(sourceID)+".json")
	if err := writeFileAtomic(path, []byte(state), 0644); err != nil {
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	g.config.Logger.Debug("chart state saved", "source_id", sourceID, "path", path)
	return nil
}

// LoadChartState retrieves the blob stored for one source id.
func (g *Gateway) LoadChartState(ctx context.Context, sourceID string) (string, error) {
	path := filepath.Join(g.Root, DrawingsDirName, SanitizeID(sourceID)+".json")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: no chart state for %q", core.ErrNotFound, sourceID)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}
	return string(data), nil
}

// ListChartStates returns the sanitized ids of all stored chart states, sorted.
// A data root without a Drawings directory yields an empty list.
func (g *Gateway) ListChartStates(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(g.Root, DrawingsDirName))
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, TempFilePrefix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// SaveStickyNotes replaces the entire persisted collection.
// The collection is one pretty-printed JSON array; there is no per-note file
// and no partial update. Array order is preserved as given.
func (g *Gateway) SaveStickyNotes(ctx context.Context, notes []core.StickyNote) error {
	dir := filepath.Join(g.Root, StickyNotesDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create sticky notes directory: %w", core.ErrPersistence, err)
	}

	// A nil slice must still serialize as [] on the wire, not null.
	if notes == nil {
		notes = []core.StickyNote{}
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrSerialization, err)
	}

	path := filepath.Join(dir, StickyNotesFileName)
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	g.config.Logger.Debug("sticky notes saved", "count", len(notes), "path", path)
	return nil
}

// LoadStickyNotes returns the persisted collection in saved order.
// A missing file is the defined "no data yet" state and yields an empty
// slice, not an error.
func (g *Gateway) LoadStickyNotes(ctx context.Context) ([]core.StickyNote, error) {
	path := filepath.Join(g.Root, StickyNotesDirName, StickyNotesFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []core.StickyNote{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	var notes []core.StickyNote
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrDeserialization, path, err)
	}
	if notes == nil {
		notes = []core.StickyNote{}
	}
	return notes, nil
}

var _ core.Gateway = (*Gateway)(nil)
