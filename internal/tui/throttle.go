package tui

import "time"

// Throttle drops events that arrive within interval of the last accepted one.
// Held key repeat floods the program with moves; the first press goes through
// immediately and the repeats are thinned out. Only used from the bubbletea
// update loop, so it needs no locking.
type Throttle struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewThrottle creates a throttle; a nil clock means time.Now
func NewThrottle(interval time.Duration, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	return &Throttle{interval: interval, now: now}
}

// Allow reports whether an event may pass now, recording it if so
func (t *Throttle) Allow() bool {
	if t.interval <= 0 {
		return true
	}
	n := t.now()
	if !t.last.IsZero() && n.Sub(t.last) < t.interval {
		return false
	}
	t.last = n
	return true
}

// Reset forgets the last accepted event
func (t *Throttle) Reset() {
	t.last = time.Time{}
}
