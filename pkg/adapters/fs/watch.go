package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/redpill/charting/pkg/core"
)

const (
	defaultEventBuffer = 16
	debounceDelay      = 50 * time.Millisecond
)

// Watch emits events for persisted records changed on disk, including changes
// made by other processes. The pattern uses doublestar syntax and matches
// against the record's logical path: "Drawings/<id>" for chart states and
// "StickyNotes/sticky_notes" for the notes collection. An empty pattern
// matches everything.
//
// The watcher creates the watched directories if they are absent (fsnotify
// cannot watch a path that does not exist yet) and closes the returned
// channel when ctx is cancelled.
func (g *Gateway) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dirs := []string{
		filepath.Join(g.Root, DrawingsDirName),
		filepath.Join(g.Root, StickyNotesDirName),
	}
	for _, dir := range dirs {
		if err := ensureDir(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("%w: %w", core.ErrPersistence, err)
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	buffer := g.config.EventBuffer
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	events := make(chan core.Event, buffer)
	deb := newDebouncer(debounceDelay)

	g.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer g.setWatcherActive(false)
		defer close(events)
		defer watcher.Close()
		defer deb.stopAndWait()

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				g.processFilesystemEvent(ctx, event, pattern, deb, events)

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				g.config.Logger.Error("fsnotify error", "error", wErr)
			}
		}
	})

	return events, nil
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// processFilesystemEvent filters, maps and debounces one fsnotify event.
func (g *Gateway) processFilesystemEvent(ctx context.Context, event fsnotify.Event, pattern string, deb *debouncer, events chan<- core.Event) {
	g.config.Logger.Debug("fs event received", "name", event.Name, "op", event.Op.String())

	kind, id, logical, ok := g.resolveRecord(event.Name)
	if !ok {
		return
	}

	if matched, err := doublestar.Match(pattern, logical); err != nil || !matched {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	deb.add(logical, func() {
		e := core.Event{
			Type:      eType,
			Kind:      kind,
			ID:        id,
			Timestamp: time.Now().Unix(),
		}
		defer func() {
			// The events channel closes during shutdown; a timer may still be in flight.
			_ = recover()
		}()
		select {
		case events <- e:
		case <-ctx.Done():
		}
	})
}

// resolveRecord maps an absolute filesystem path to a persisted record.
// Temp files from atomic writes and anything outside the two record
// directories are ignored.
func (g *Gateway) resolveRecord(path string) (kind core.RecordKind, id, logical string, ok bool) {
	rel, err := filepath.Rel(g.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", "", "", false
	}
	rel = filepath.ToSlash(rel)

	base := filepath.Base(path)
	if strings.HasPrefix(base, TempFilePrefix) {
		return "", "", "", false
	}

	switch {
	case strings.HasPrefix(rel, DrawingsDirName+"/") && strings.HasSuffix(rel, ".json"):
		id = strings.TrimSuffix(strings.TrimPrefix(rel, DrawingsDirName+"/"), ".json")
		if strings.Contains(id, "/") {
			return "", "", "", false
		}
		return core.KindChart, id, DrawingsDirName + "/" + id, true

	case rel == StickyNotesDirName+"/"+StickyNotesFileName:
		id = strings.TrimSuffix(StickyNotesFileName, ".json")
		return core.KindNotes, id, StickyNotesDirName + "/" + id, true
	}

	return "", "", "", false
}

// mapEventType converts an fsnotify op into a record event type.
// Renames show up as Create for the target path (atomic writes) and Rename
// for the source, so Rename counts as a delete of the old name.
func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

// debouncer coalesces bursts of events per key. fsnotify commonly delivers
// several ops for a single logical save (create temp, write, rename).
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	pending sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fn to run after the delay, resetting the timer if the same
// key fires again first.
func (d *debouncer) add(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[key]; ok {
		if t.Stop() {
			d.pending.Done()
		}
	}

	d.pending.Add(1)
	d.timers[key] = time.AfterFunc(d.delay, func() {
		defer d.pending.Done()

		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()

		fn()
	})
}

// stopAndWait stops accepting new events and waits for in-flight timers,
// so the caller can safely close the downstream channel.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.pending.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	d.pending.Wait()
}
