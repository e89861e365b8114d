package fs_test

import (
	"context"
	"testing"
	"time"

	"github.com/redpill/charting/pkg/core"
)

func waitForEvent(t *testing.T, events <-chan core.Event, timeout time.Duration) (core.Event, bool) {
	t.Helper()

	select {
	case e, ok := <-events:
		return e, ok
	case <-time.After(timeout):
		return core.Event{}, false
	}
}

func TestWatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Emits Event On Chart Save", func(t *testing.T) {
		gw, _ := setupGateway(t)

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		events, err := gw.Watch(watchCtx, "Drawings/*")
		if err != nil {
			t.Fatalf("Watch failed: %v", err)
		}

		if err := gw.SaveChartState(ctx, "watched", "{}"); err != nil {
			t.Fatalf("SaveChartState failed: %v", err)
		}

		e, ok := waitForEvent(t, events, 3*time.Second)
		if !ok {
			t.Fatal("expected an event for the saved chart state")
		}
		if e.Kind != core.KindChart || e.ID != "watched" {
			t.Errorf("event = %+v, want chart/watched", e)
		}
	})

	t.Run("Pattern Filters Out Other Records", func(t *testing.T) {
		gw, _ := setupGateway(t)

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		events, err := gw.Watch(watchCtx, "StickyNotes/*")
		if err != nil {
			t.Fatalf("Watch failed: %v", err)
		}

		if err := gw.SaveChartState(ctx, "ignored", "{}"); err != nil {
			t.Fatalf("SaveChartState failed: %v", err)
		}
		if err := gw.SaveStickyNotes(ctx, nil); err != nil {
			t.Fatalf("SaveStickyNotes failed: %v", err)
		}

		e, ok := waitForEvent(t, events, 3*time.Second)
		if !ok {
			t.Fatal("expected an event for the notes collection")
		}
		if e.Kind != core.KindNotes {
			t.Errorf("event = %+v, want a notes event only", e)
		}
	})

	t.Run("Cancel Closes Channel", func(t *testing.T) {
		gw, _ := setupGateway(t)

		watchCtx, cancel := context.WithCancel(ctx)
		events, err := gw.Watch(watchCtx, "")
		if err != nil {
			t.Fatalf("Watch failed: %v", err)
		}

		cancel()

		deadline := time.After(3 * time.Second)
		for {
			select {
			case _, ok := <-events:
				if !ok {
					return // closed as expected
				}
			case <-deadline:
				t.Fatal("events channel was not closed after cancel")
			}
		}
	})

	t.Run("Rejects Invalid Pattern", func(t *testing.T) {
		gw, _ := setupGateway(t)

		if _, err := gw.Watch(ctx, "[unclosed"); err == nil {
			t.Error("expected error for invalid pattern")
		}
	})
}
