package scroll

import "time"

// Throttle lets one call through per window, dropping the rest.
type Throttle struct {
	limit time.Duration
	now   func() time.Time
	last  time.Time
	ok    bool
}

// NewThrottle returns a throttle with the given window. now defaults to
// time.Now.
func NewThrottle(limit time.Duration, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	return &Throttle{limit: limit, now: now}
}

// Allow reports whether a call may run now, and if so starts a new window.
func (t *Throttle) Allow() bool {
	n := t.now()
	if t.ok && n.Sub(t.last) < t.limit {
		return false
	}
	t.last, t.ok = n, true
	return true
}
