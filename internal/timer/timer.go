// ABOUTME: Rest timer: once-per-second countdown with a one-shot completion signal.
// ABOUTME: Starting a new countdown stops the running one first; no overlap.
package timer

import (
	"sync"
	"time"
)

// RestTimer counts a rest period down at 1 Hz. Callbacks run on the timer
// goroutine; keep them short.
type RestTimer struct {
	mu       sync.Mutex
	stop     chan struct{}
	interval time.Duration
}

// New creates a stopped rest timer.
func New() *RestTimer {
	return &RestTimer{interval: time.Second}
}

// NewWithInterval creates a timer with a custom tick interval, for tests.
func NewWithInterval(interval time.Duration) *RestTimer {
	return &RestTimer{interval: interval}
}

// Start begins a countdown of the given number of seconds. onTick receives
// the remaining seconds after each tick; onDone fires exactly once when the
// countdown reaches zero. A running countdown is stopped first.
func (t *RestTimer) Start(seconds int, onTick func(remaining int), onDone func()) {
	t.mu.Lock()
	if t.stop != nil {
		close(t.stop)
	}
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		remaining := seconds
		for remaining > 0 {
			select {
			case <-stop:
				return
			case <-ticker.C:
				remaining--
				if onTick != nil {
					onTick(remaining)
				}
			}
		}

		t.mu.Lock()
		if t.stop == stop {
			t.stop = nil
		}
		t.mu.Unlock()

		if onDone != nil {
			onDone()
		}
	}()
}

// Stop cancels a running countdown. Idempotent; a finished or never-started
// timer is a no-op.
func (t *RestTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Running reports whether a countdown is in progress.
func (t *RestTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}
