package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the underlying storage
// changes outside the owning process. Receivers should reload the
// store; the event does not say what changed, only that something did.
type Event struct {
	// Path is the filesystem path that triggered the notification.
	Path string
}

const watchCoalesceDelay = 100 * time.Millisecond

// watchDir streams a coalesced Event whenever a file matching the
// predicate changes under dir. The channel closes when ctx is done or
// the watcher fails unrecoverably. Callers should drain the channel to
// avoid losing notifications; events are dropped, not queued, when the
// consumer lags.
func watchDir(ctx context.Context, dir string, match func(path string) bool) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events when the consumer is not ready; the next
				// reload picks up everything anyway and this keeps
				// filesystem storms from blocking the watcher.
			}
		}

		throttle := newEventThrottle(watchCoalesceDelay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Path: dir}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if !match(evt.Name) {
					continue
				}
				throttle.Enqueue(Event{Path: evt.Name}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of change notifications so consumers
// redraw once per burst instead of once per write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Event
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

// Enqueue records the event and arms the flush timer. Only the latest
// event of a burst is delivered.
func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = &ev
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		ev := t.pending
		t.pending = nil
		t.timer = nil
		t.mu.Unlock()
		if ev != nil {
			send(*ev)
		}
	})
}

// Stop cancels any pending flush.
func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = nil
}
