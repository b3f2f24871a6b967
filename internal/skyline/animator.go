package skyline

import "math"

// Animator eases draw progress from 0 to 1 once triggered.
type Animator struct {
	Duration  int // ticks
	elapsed   int
	triggered bool
}

// NewAnimator returns an idle animator that completes in duration ticks.
func NewAnimator(duration int) *Animator {
	return &Animator{Duration: duration}
}

// Trigger starts the animation. Later triggers are ignored.
func (a *Animator) Trigger() { a.triggered = true }

// Triggered reports whether the animation has started.
func (a *Animator) Triggered() bool { return a.triggered }

// Tick advances one frame.
func (a *Animator) Tick() {
	if a.triggered && a.elapsed < a.Duration {
		a.elapsed++
	}
}

// Done reports whether the path is fully drawn.
func (a *Animator) Done() bool {
	return a.triggered && a.elapsed >= a.Duration
}

// Progress returns eased progress in [0, 1].
func (a *Animator) Progress() float64 {
	if !a.triggered {
		return 0
	}
	if a.Duration <= 0 {
		return 1
	}
	return EaseOutCubic(float64(a.elapsed) / float64(a.Duration))
}

// EaseOutCubic maps t in [0, 1] onto a decelerating curve.
func EaseOutCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	u := 1 - t
	return 1 - u*u*u
}
