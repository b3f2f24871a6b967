// Package ggcanvas implements surface.Canvas on a gogpu/gg context for
// offscreen rendering.
package ggcanvas

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/mavroudis/canvasfx/internal/logging"
)

// Canvas adapts a *gg.Context. Save and Restore map onto Push and Pop.
type Canvas struct {
	dc *gg.Context
}

// New creates a w×h software-rendered canvas.
func New(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h)}
}

// Context exposes the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// SavePNG writes the current pixels to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Close releases the context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) Clear() { c.dc.Clear() }

func (c *Canvas) Save() { c.dc.Push() }

func (c *Canvas) Restore() { c.dc.Pop() }

func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

func (c *Canvas) Rotate(angle float64) { c.dc.Rotate(angle) }

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(lineWidth)
	c.dc.DrawRectangle(x, y, w, h)
	c.stroke()
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawCircle(x, y, r)
	if err := c.dc.Fill(); err != nil {
		logging.Logger().Warn("gg fill failed", "err", err)
	}
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, lineWidth float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(lineWidth)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.stroke()
}

func (c *Canvas) stroke() {
	if err := c.dc.Stroke(); err != nil {
		logging.Logger().Warn("gg stroke failed", "err", err)
	}
}
