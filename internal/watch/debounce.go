package watch

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a debounced action runs
const DefaultDelay = 150 * time.Millisecond

// Debouncer runs fn once after the last Trigger in a burst.
// Each Trigger restarts the timer.
type Debouncer struct {
	delay   time.Duration
	fn      func()
	mu      sync.Mutex
	stopped bool
	timer   *time.Timer
}

// NewDebouncer creates a Debouncer; a non-positive delay uses DefaultDelay
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn, cancelling any pending run
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels a pending run; later Triggers are ignored
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
