// Package document lays out the page: a vertical stack of sections, the
// containers of the animated surfaces and the blocks that reveal on scroll.
// All rects are in page coordinates (y grows down from the document top).
package document

import (
	"math"

	"github.com/mavroudis/canvasfx/internal/config"
	"github.com/mavroudis/canvasfx/internal/scroll"
	"github.com/mavroudis/canvasfx/internal/surface"
)

// Section ids, in document order.
const (
	Hero    = "hero"
	About   = "about"
	Stealth = "stealth"
	Skyline = "skyline"
	Contact = "contact"
)

// Order lists the sections top to bottom.
var Order = []string{Hero, About, Stealth, Skyline, Contact}

var titles = map[string]string{
	Hero:    "MAVROUDIS",
	About:   "About",
	Stealth: "Stealth",
	Skyline: "Toronto / Miami",
	Contact: "Contact",
}

// Section is one full-width band of the page.
type Section struct {
	ID    string
	Title string
	Rect  surface.Rect
}

// Block is an element that reveals when scrolled into view.
type Block struct {
	ID    string
	Label string
	Rect  surface.Rect
}

// Layout is the page geometry for one viewport size.
type Layout struct {
	Viewport surface.Size
	Sections []Section
	Blocks   []Block
	Height   float64
}

// Build lays the page out for a w×h viewport.
func Build(w, h int) Layout {
	vw, vh := float64(max(w, 0)), float64(max(h, 0))
	heights := map[string]float64{
		Hero:    vh,
		About:   math.Max(vh*0.9, 480),
		Stealth: math.Max(vh*0.8, config.StealthMinHeight),
		Skyline: config.SkylineBandHeight + 160,
		Contact: 320,
	}

	l := Layout{Viewport: surface.Size{W: w, H: h}}
	y := 0.0
	for _, id := range Order {
		s := Section{ID: id, Title: titles[id], Rect: surface.Rect{X: 0, Y: y, W: vw, H: heights[id]}}
		l.Sections = append(l.Sections, s)
		y += s.Rect.H
	}
	l.Height = y

	about, _ := l.Section(About)
	cardW := math.Max((vw-4*48)/3, 0)
	for i, label := range []string{"Strategy", "Product", "Engineering"} {
		l.Blocks = append(l.Blocks, Block{
			ID:    "about-" + label,
			Label: label,
			Rect: surface.Rect{
				X: 48 + float64(i)*(cardW+48),
				Y: about.Rect.Y + 120,
				W: cardW,
				H: math.Max(about.Rect.H-200, 0),
			},
		})
	}
	stealth, _ := l.Section(Stealth)
	l.Blocks = append(l.Blocks, Block{
		ID:    "stealth-title",
		Label: "Building something new in AI",
		Rect:  surface.Rect{X: 48, Y: stealth.Rect.Y + 48, W: math.Max(vw-96, 0), H: 64},
	})
	contact, _ := l.Section(Contact)
	l.Blocks = append(l.Blocks, Block{
		ID:    "contact-card",
		Label: "hello@mavroudis.ca",
		Rect:  surface.Rect{X: 48, Y: contact.Rect.Y + 96, W: math.Max(vw-96, 0), H: 120},
	})
	return l
}

// Section returns the section with the given id.
func (l Layout) Section(id string) (Section, bool) {
	for _, s := range l.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// HeroCanvas is the hero canvas container: the hero section.
func (l Layout) HeroCanvas() surface.Rect {
	s, _ := l.Section(Hero)
	return s.Rect
}

// NetworkCanvas is the node-network container: the stealth section.
func (l Layout) NetworkCanvas() surface.Rect {
	s, _ := l.Section(Stealth)
	return s.Rect
}

// SkylinePath is the band the skyline path occupies.
func (l Layout) SkylinePath() surface.Rect {
	s, _ := l.Section(Skyline)
	return surface.Rect{X: 0, Y: s.Rect.Y + 120, W: s.Rect.W, H: config.SkylineBandHeight}
}

// MaxScroll is the largest scroll offset.
func (l Layout) MaxScroll() float64 {
	return math.Max(0, l.Height-float64(l.Viewport.H))
}

// ViewportAt returns the visible page rect at scroll offset y.
func (l Layout) ViewportAt(y float64) surface.Rect {
	return surface.Rect{X: 0, Y: y, W: float64(l.Viewport.W), H: float64(l.Viewport.H)}
}

// Anchors maps each section id to its top.
func (l Layout) Anchors() scroll.Anchors {
	a := make(scroll.Anchors, len(l.Sections))
	for _, s := range l.Sections {
		a[s.ID] = s.Rect.Y
	}
	return a
}
