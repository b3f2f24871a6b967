// Package skyline generates a stepped city silhouette and draws it
// progressively, like an SVG path whose stroke is revealed on scroll.
package skyline

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/mavroudis/canvasfx/internal/surface"
)

// Noise parameters
const (
	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseOct   = 3
	// Sample step between buildings; kept off integers because 1-D Perlin
	// noise is zero at lattice points.
	noiseStep = 0.37

	minBuilding = 20.0
	maxBuilding = 60.0
	minHeight   = 0.2
	maxHeight   = 0.9
)

// Skyline is a polyline from the bottom-left corner, over the rooftops, to
// the bottom-right corner of a width×height band.
type Skyline struct {
	Width, Height float64
	Points        []surface.Point
	length        float64
}

// New builds the silhouette for a band. The same seed gives the same city.
func New(width, height float64, seed int64) *Skyline {
	s := &Skyline{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return s
	}
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOct, seed)

	s.Points = append(s.Points, surface.Point{X: 0, Y: height})
	x := 0.0
	for i := 0; x < width; i++ {
		t := float64(i)*noiseStep + noiseStep/2
		bw := minBuilding + unit(noise.Noise1D(t+100))*(maxBuilding-minBuilding)
		bh := (minHeight + unit(noise.Noise1D(t))*(maxHeight-minHeight)) * height
		right := math.Min(x+bw, width)
		roof := height - bh
		s.Points = append(s.Points, surface.Point{X: x, Y: roof}, surface.Point{X: right, Y: roof})
		x = right
	}
	s.Points = append(s.Points, surface.Point{X: width, Y: height})

	for i := 1; i < len(s.Points); i++ {
		s.length += dist(s.Points[i-1], s.Points[i])
	}
	return s
}

// unit maps noise output onto [0, 1]. The bounded amplitude of the
// generator keeps most samples within [-0.5, 0.5].
func unit(n float64) float64 {
	v := n + 0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func dist(a, b surface.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Length returns the total path length.
func (s *Skyline) Length() float64 { return s.length }

// Draw strokes the first progress×Length of the path onto c, offset by
// (x, y). progress is clamped to [0, 1].
func (s *Skyline) Draw(c surface.Canvas, x, y, progress, lineWidth float64, col color.Color) {
	if progress <= 0 || len(s.Points) < 2 {
		return
	}
	if progress > 1 {
		progress = 1
	}
	remaining := progress * s.length

	c.Save()
	c.Translate(x, y)
	defer c.Restore()

	for i := 1; i < len(s.Points) && remaining > 0; i++ {
		a, b := s.Points[i-1], s.Points[i]
		seg := dist(a, b)
		if seg == 0 {
			continue
		}
		if seg > remaining {
			f := remaining / seg
			b = surface.Point{X: a.X + (b.X-a.X)*f, Y: a.Y + (b.Y-a.Y)*f}
		}
		c.StrokeLine(a.X, a.Y, b.X, b.Y, lineWidth, col)
		remaining -= seg
	}
}
