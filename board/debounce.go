package board

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is the delay applied to search input before a fetch
const DefaultSearchDebounce = 300 * time.Millisecond

// Debouncer delays a callback until no further call has arrived within the
// window. Each call supersedes the pending one, so a burst of calls produces
// exactly one invocation after the burst settles.
type Debouncer struct {
	wait time.Duration
	fn   func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer that invokes fn after wait of quiet time
func NewDebouncer(wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		wait: wait,
		fn:   fn,
	}
}

// Call schedules an invocation, cancelling any pending one
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fn)
}

// Stop cancels any pending invocation. Safe to call repeatedly.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
