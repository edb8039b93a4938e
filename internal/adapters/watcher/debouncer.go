// Package watcher implements file system watching and batches raw events into
// file change notifications.
package watcher

import (
	"sync"
	"time"
	"unique"

	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
)

type eventKey struct {
	path unique.Handle[string]
	op   ports.WatchOp
}

// Debouncer coalesces rapid file system events into batched change events.
type Debouncer struct {
	mu       sync.Mutex
	pending  []ports.WatchEvent
	seen     map[eventKey]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(domain.FileChangedEvent)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(domain.FileChangedEvent)) *Debouncer {
	return &Debouncer{
		seen:     make(map[eventKey]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add queues an event and restarts the debounce window.
// Repeats of an already queued path and operation are dropped.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := eventKey{path: unique.Make(event.Path), op: event.Operation}
	if _, ok := d.seen[key]; !ok {
		d.seen[key] = struct{}{}
		d.pending = append(d.pending, event)
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// take must be called with mu held.
func (d *Debouncer) take() []ports.WatchEvent {
	batch := d.pending
	d.pending = nil
	d.seen = make(map[eventKey]struct{})
	return batch
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	batch := d.take()
	d.timer = nil
	d.mu.Unlock()

	if len(batch) > 0 && d.callback != nil {
		go d.callback(Collapse(batch))
	}
}

// Flush immediately delivers all pending events and blocks until the callback returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// The timer already fired and owns the pending batch.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	batch := d.take()
	d.mu.Unlock()

	if len(batch) > 0 && d.callback != nil {
		d.callback(Collapse(batch))
	}
}
