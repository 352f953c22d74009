// samarth-crm/pkg/receipts/debounce.go
package receipts

import (
	"sync"
	"time"
)

// DefaultDebounce - интервал для поиска по мере ввода.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces rapid Trigger calls: the function runs once, after the
// delay has elapsed without a newer Trigger. A new Trigger supersedes any
// pending one, so filtering is not recomputed on every keystroke.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given delay; non-positive values
// fall back to DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, cancelling any previously scheduled call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels a pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
