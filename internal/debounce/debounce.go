// Package debounce provides trailing-edge debouncing for rapid events such
// as cart change notifications.
package debounce

import (
	"sync"
	"time"
)

// Debouncer executes a function only after its duration has elapsed without
// any new calls. Rapid successive calls reset the timer. A zero duration
// executes immediately.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

func New(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Trigger schedules fn, superseding any pending call.
func (d *Debouncer) Trigger(fn func()) {
	if d.duration <= 0 {
		d.Cancel()
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops any pending scheduled call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
