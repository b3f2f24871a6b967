// Package lifecycle drives an animation's redraw loop: it starts and stops
// the loop as the page is shown or hidden and forwards container resizes.
package lifecycle

// State is the run state of a Loop.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Handle identifies one scheduled loop. Stopping the loop invalidates its
// handle; frames carrying a stale handle are dropped.
type Handle uint64

// Loop is the self-rescheduling frame sequence of one animation.
type Loop struct {
	state  State
	handle Handle
	starts int
}

// State returns the current state.
func (l *Loop) State() State { return l.state }

// Running reports whether frames are being scheduled.
func (l *Loop) Running() bool { return l.state == Running }

// Start begins a fresh frame sequence and returns its handle. Starting a
// running loop keeps the current sequence.
func (l *Loop) Start() Handle {
	if l.state == Running {
		return l.handle
	}
	l.handle++
	l.state = Running
	l.starts++
	return l.handle
}

// Stop cancels the current sequence. Stopping a stopped loop does nothing.
func (l *Loop) Stop() {
	if l.state == Stopped {
		return
	}
	l.state = Stopped
	l.handle++
}

// Handle returns the handle of the live sequence, or of the last cancelled
// one when stopped.
func (l *Loop) Handle() Handle { return l.handle }

// Frame reports whether a frame scheduled under h should run.
func (l *Loop) Frame(h Handle) bool {
	return l.state == Running && h == l.handle
}

// Starts counts how many sequences have been started.
func (l *Loop) Starts() int { return l.starts }
