// Package shapes implements the hero background: a field of translucent
// squares slowly rotating in place, in the two brand colors.
package shapes

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/mavroudis/canvasfx/internal/config"
	"github.com/mavroudis/canvasfx/internal/logging"
	"github.com/mavroudis/canvasfx/internal/surface"
)

// Palette colors from the design system.
var (
	Toronto      = surface.Hex("#2C3E50")
	TorontoLight = surface.Hex("#95A5A6")
	Miami        = surface.Hex("#FF6B6B")
	MiamiLight   = surface.Hex("#00D9FF")
)

// Shape is a single rotating square.
type Shape struct {
	X, Y          float64 // Centre
	Size          float64 // Side length
	Rotation      float64 // Radians, grows without bound
	RotationSpeed float64 // Radians per frame
	Color         color.NRGBA
	Alpha         float64
}

// Field holds the shapes for one surface.
type Field struct {
	Width, Height int
	shapes        []Shape
	rng           *rand.Rand
}

// NewField creates an empty field. Call Resize to populate it.
func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Count returns the number of shapes a w×h surface carries: one per
// 50000 square pixels.
func Count(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return (w * h) / config.ShapeAreaPerShape
}

// Resize applies the container size and regenerates every shape. Prior
// rotation phase is discarded.
func (f *Field) Resize(w, h int) {
	f.Width, f.Height = w, h
	f.Generate()
	logging.Logger().Debug("hero field resized", "width", w, "height", h, "shapes", len(f.shapes))
}

// Generate replaces the shapes with a fresh random batch sized for the
// current dimensions.
func (f *Field) Generate() {
	n := Count(f.Width, f.Height)
	f.shapes = make([]Shape, n)
	for i := range f.shapes {
		c := Toronto
		if i%2 == 1 {
			c = Miami
		}
		f.shapes[i] = Shape{
			X:             f.rng.Float64() * float64(f.Width),
			Y:             f.rng.Float64() * float64(f.Height),
			Size:          f.rng.Float64()*config.ShapeSizeRange + config.ShapeMinSize,
			Rotation:      f.rng.Float64() * math.Pi * 2,
			RotationSpeed: (f.rng.Float64() - 0.5) * 2 * config.ShapeMaxSpin,
			Color:         c,
			Alpha:         f.rng.Float64()*config.ShapeAlphaRange + config.ShapeMinAlpha,
		}
	}
}

// Shapes returns the live shapes.
func (f *Field) Shapes() []Shape { return f.shapes }

// Step redraws the field and advances each shape's rotation by one frame.
func (f *Field) Step(c surface.Canvas) {
	c.Clear()
	for i := range f.shapes {
		s := &f.shapes[i]

		c.Save()
		c.Translate(s.X, s.Y)
		c.Rotate(s.Rotation)
		half := s.Size / 2
		c.StrokeRect(-half, -half, s.Size, s.Size, config.ShapeLineWidth, surface.WithAlpha(s.Color, s.Alpha))
		c.Restore()

		s.Rotation += s.RotationSpeed
	}
}
