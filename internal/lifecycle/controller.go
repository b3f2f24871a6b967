package lifecycle

import (
	"github.com/mavroudis/canvasfx/internal/logging"
	"github.com/mavroudis/canvasfx/internal/surface"
)

// Animation is a per-frame simulation bound to one surface.
type Animation interface {
	Resize(w, h int)
	Step(c surface.Canvas)
}

// Resizer is implemented by canvases that own pixel storage.
type Resizer interface {
	Resize(w, h int)
}

// Controller binds an Animation to its canvas and redraw loop.
//
// A nil *Controller stands for an absent surface: every method is a no-op.
type Controller struct {
	name   string
	anim   Animation
	canvas surface.Canvas
	size   surface.Size
	sized  bool
	hidden bool
	loop   Loop
	handle Handle
	frames int
}

// Mount wires anim to canvas when the named surface is present on the page.
// It returns nil otherwise.
func Mount(name string, present bool, anim Animation, canvas surface.Canvas) *Controller {
	if !present {
		logging.Logger().Debug("surface absent, effect disabled", "surface", name)
		return nil
	}
	logging.Logger().Debug("surface mounted", "surface", name)
	return &Controller{name: name, anim: anim, canvas: canvas}
}

// Init performs the one-time setup: size to the container and start.
func (c *Controller) Init(w, h int) {
	if c == nil {
		return
	}
	c.Resize(w, h)
	c.Start()
}

// Name returns the surface name.
func (c *Controller) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Resize applies new container dimensions. Repeated notifications with an
// unchanged size are ignored.
func (c *Controller) Resize(w, h int) {
	if c == nil {
		return
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := surface.Size{W: w, H: h}
	if c.sized && s == c.size {
		return
	}
	c.size, c.sized = s, true
	if r, ok := c.canvas.(Resizer); ok {
		r.Resize(w, h)
	}
	c.anim.Resize(w, h)
}

// Size returns the last applied container size.
func (c *Controller) Size() surface.Size {
	if c == nil {
		return surface.Size{}
	}
	return c.size
}

// Start schedules the loop unless the page is hidden.
func (c *Controller) Start() {
	if c == nil || c.hidden {
		return
	}
	c.handle = c.loop.Start()
}

// Stop cancels the loop.
func (c *Controller) Stop() {
	if c == nil {
		return
	}
	c.loop.Stop()
}

// SetHidden reacts to a page-visibility change: hiding cancels the loop,
// showing starts exactly one fresh loop.
func (c *Controller) SetHidden(hidden bool) {
	if c == nil || hidden == c.hidden {
		return
	}
	c.hidden = hidden
	if hidden {
		c.loop.Stop()
		logging.Logger().Info("animation paused", "surface", c.name)
		return
	}
	c.handle = c.loop.Start()
	logging.Logger().Info("animation resumed", "surface", c.name)
}

// Tick runs one frame if the loop is live and reports whether it drew.
func (c *Controller) Tick() bool {
	if c == nil || !c.loop.Frame(c.handle) {
		return false
	}
	c.anim.Step(c.canvas)
	c.frames++
	return true
}

// Running reports whether the loop is scheduled.
func (c *Controller) Running() bool {
	return c != nil && c.loop.Running()
}

// Frames counts frames drawn since mount.
func (c *Controller) Frames() int {
	if c == nil {
		return 0
	}
	return c.frames
}

// Loop exposes the redraw loop.
func (c *Controller) Loop() *Loop {
	if c == nil {
		return nil
	}
	return &c.loop
}
