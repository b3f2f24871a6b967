// Package scroll provides smooth anchor scrolling for the page and a
// leading-edge throttle.
package scroll

import "math"

// Scroller holds the document's vertical scroll offset.
type Scroller struct {
	Offset   float64
	Max      float64
	Duration int // ticks per smooth scroll

	from, to float64
	elapsed  int
	active   bool
}

// NewScroller returns a scroller at the top of the document.
func NewScroller(duration int) *Scroller {
	return &Scroller{Duration: duration}
}

// SetMax updates the scrollable range, clamping the offset into it.
func (s *Scroller) SetMax(m float64) {
	s.Max = math.Max(0, m)
	s.Offset = s.clamp(s.Offset)
	if s.active {
		s.to = s.clamp(s.to)
	}
}

func (s *Scroller) clamp(v float64) float64 {
	return math.Max(0, math.Min(s.Max, v))
}

// ScrollTo starts a smooth scroll that brings target to the top of the
// viewport.
func (s *Scroller) ScrollTo(target float64) {
	s.from = s.Offset
	s.to = s.clamp(target)
	s.elapsed = 0
	s.active = s.to != s.from
}

// ScrollBy jumps by delta and cancels any smooth scroll in progress.
func (s *Scroller) ScrollBy(delta float64) {
	s.active = false
	s.Offset = s.clamp(s.Offset + delta)
}

// Scrolling reports whether a smooth scroll is in progress.
func (s *Scroller) Scrolling() bool { return s.active }

// Update advances a smooth scroll by one tick.
func (s *Scroller) Update() {
	if !s.active {
		return
	}
	s.elapsed++
	if s.Duration <= 0 || s.elapsed >= s.Duration {
		s.Offset = s.to
		s.active = false
		return
	}
	t := EaseInOut(float64(s.elapsed) / float64(s.Duration))
	s.Offset = s.from + (s.to-s.from)*t
}

// EaseInOut is a cubic ease-in-out curve on [0, 1].
func EaseInOut(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Anchors maps in-page link targets to document offsets.
type Anchors map[string]float64

// Follow scrolls s to the named anchor. Unknown anchors are ignored.
func (a Anchors) Follow(s *Scroller, name string) bool {
	y, ok := a[name]
	if !ok {
		return false
	}
	s.ScrollTo(y)
	return true
}
