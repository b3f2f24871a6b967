// Package reveal tracks page elements that animate in once they scroll into
// view. Reveal is one-way: an element never un-reveals.
package reveal

import (
	"sort"

	"github.com/mavroudis/canvasfx/internal/surface"
)

// Observer watches element rects against a viewport.
type Observer struct {
	// Threshold is the fraction of an element's area that must be visible.
	Threshold float64
	// RootMargin grows the viewport on every side, in pixels.
	RootMargin float64

	elements map[string]*element
	tick     int
}

type element struct {
	rect       surface.Rect
	revealed   bool
	revealedAt int
}

// NewObserver returns an observer with the given threshold and margin.
func NewObserver(threshold, rootMargin float64) *Observer {
	return &Observer{
		Threshold:  threshold,
		RootMargin: rootMargin,
		elements:   make(map[string]*element),
	}
}

// Observe starts watching id at rect, in page coordinates. Observing an
// existing id updates its rect and keeps its reveal state.
func (o *Observer) Observe(id string, rect surface.Rect) {
	if e, ok := o.elements[id]; ok {
		e.rect = rect
		return
	}
	o.elements[id] = &element{rect: rect}
}

// InitialPass reveals every element already overlapping the viewport,
// regardless of threshold.
func (o *Observer) InitialPass(viewport surface.Rect) []string {
	return o.sweep(func(e *element) bool {
		return e.rect.Y < viewport.Y+viewport.H && e.rect.Y+e.rect.H > viewport.Y
	})
}

// Update advances the observer clock and reveals elements whose visible
// fraction reached the threshold. It returns the newly revealed ids.
func (o *Observer) Update(viewport surface.Rect) []string {
	o.tick++
	root := viewport.Inset(o.RootMargin)
	return o.sweep(func(e *element) bool {
		return Ratio(e.rect, root) >= o.Threshold && root.Intersect(e.rect).Area() > 0
	})
}

func (o *Observer) sweep(visible func(*element) bool) []string {
	var out []string
	for id, e := range o.elements {
		if e.revealed || !visible(e) {
			continue
		}
		e.revealed = true
		e.revealedAt = o.tick
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Revealed reports whether id has been revealed.
func (o *Observer) Revealed(id string) bool {
	e, ok := o.elements[id]
	return ok && e.revealed
}

// Since returns how many updates ago id was revealed, or -1 if it has not
// been.
func (o *Observer) Since(id string) int {
	e, ok := o.elements[id]
	if !ok || !e.revealed {
		return -1
	}
	return o.tick - e.revealedAt
}

// Ratio is the fraction of r's area inside root.
func Ratio(r, root surface.Rect) float64 {
	a := r.Area()
	if a == 0 {
		return 0
	}
	return root.Intersect(r).Area() / a
}
