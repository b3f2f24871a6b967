// Package ebitencanvas implements surface.Canvas on an offscreen ebiten image.
package ebitencanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws into its own image, which the page composites onto the
// screen at the surface's position. A zero-area canvas has no image and
// drops every draw.
type Canvas struct {
	img      *ebiten.Image
	borrowed bool
	geo      ebiten.GeoM
	stack    []ebiten.GeoM
}

// New allocates a w×h canvas.
func New(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Wrap draws directly onto img, typically the screen. The canvas does not
// own img and never deallocates it.
func Wrap(img *ebiten.Image) *Canvas {
	return &Canvas{img: img, borrowed: true}
}

// Resize replaces the backing image and resets the transform.
func (c *Canvas) Resize(w, h int) {
	if c.img != nil && !c.borrowed {
		c.img.Deallocate()
	}
	c.img, c.borrowed = nil, false
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
	c.geo.Reset()
	c.stack = c.stack[:0]
}

// Image returns the backing image, nil for a zero-area canvas.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// DrawTo composites the canvas onto dst with its top-left at (x, y).
func (c *Canvas) DrawTo(dst *ebiten.Image, x, y float64) {
	if c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(c.img, op)
}

func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.geo)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate and Rotate apply before the current transform, as canvas 2D
// does, so the local op goes first and the accumulated GeoM after it.
func (c *Canvas) Translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	t.Concat(c.geo)
	c.geo = t
}

func (c *Canvas) Rotate(angle float64) {
	var r ebiten.GeoM
	r.Rotate(angle)
	r.Concat(c.geo)
	c.geo = r
}

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, clr color.Color) {
	if c.img == nil {
		return
	}
	x0, y0 := c.geo.Apply(x, y)
	x1, y1 := c.geo.Apply(x+w, y)
	x2, y2 := c.geo.Apply(x+w, y+h)
	x3, y3 := c.geo.Apply(x, y+h)
	lw := float32(lineWidth)
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), lw, clr, true)
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), lw, clr, true)
	vector.StrokeLine(c.img, float32(x2), float32(y2), float32(x3), float32(y3), lw, clr, true)
	vector.StrokeLine(c.img, float32(x3), float32(y3), float32(x0), float32(y0), lw, clr, true)
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	if c.img == nil {
		return
	}
	cx, cy := c.geo.Apply(x, y)
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, lineWidth float64, clr color.Color) {
	if c.img == nil {
		return
	}
	ax, ay := c.geo.Apply(x1, y1)
	bx, by := c.geo.Apply(x2, y2)
	vector.StrokeLine(c.img, float32(ax), float32(ay), float32(bx), float32(by), float32(lineWidth), clr, true)
}
