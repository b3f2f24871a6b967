// Package surface defines the drawable surface the effects render into.
//
// A Canvas exposes the subset of the canvas 2D API the effects use: a
// save/restore transform stack, translate and rotate, stroked rectangles and
// lines, filled circles. Backends live in subpackages (ebitencanvas for the
// window, ggcanvas for offscreen PNG output); Recorder is an in-memory
// backend that captures operations.
package surface

import (
	"image/color"
	"math"
)

// Canvas is a 2D drawing target with canvas-style transform state.
type Canvas interface {
	Clear()
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color)
}

// Size is a surface size in pixels.
type Size struct {
	W, H int
}

// Empty reports whether the size has zero area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Rect is an axis-aligned rectangle in page or screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Area returns W*H, or 0 for degenerate rects.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o. The result has zero area when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.W, o.X+o.W)
	y1 := math.Min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset grows r by m on every side (shrinks it for negative m).
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// WithAlpha returns c with its alpha replaced by a in [0, 1], the way
// globalAlpha or an rgba() color string combine with a base color.
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(math.Round(a * 255))
	return c
}

// Hex parses "#RRGGBB" into an opaque color. Malformed input yields black.
func Hex(s string) color.NRGBA {
	c := color.NRGBA{A: 255}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	v := [3]uint8{}
	for i := range v {
		hi, ok1 := hexDigit(s[1+2*i])
		lo, ok2 := hexDigit(s[2+2*i])
		if !ok1 || !ok2 {
			return color.NRGBA{A: 255}
		}
		v[i] = hi<<4 | lo
	}
	c.R, c.G, c.B = v[0], v[1], v[2]
	return c
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
