// Package page hosts the effects in an ebiten window laid out like the
// marketing page: a scrollable stack of sections with the hero field at the
// top, the node network in the stealth section and a skyline that draws
// itself when scrolled into view.
package page

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mavroudis/canvasfx/internal/config"
	"github.com/mavroudis/canvasfx/internal/document"
	"github.com/mavroudis/canvasfx/internal/lifecycle"
	"github.com/mavroudis/canvasfx/internal/logging"
	"github.com/mavroudis/canvasfx/internal/network"
	"github.com/mavroudis/canvasfx/internal/reveal"
	"github.com/mavroudis/canvasfx/internal/scroll"
	"github.com/mavroudis/canvasfx/internal/shapes"
	"github.com/mavroudis/canvasfx/internal/skyline"
	"github.com/mavroudis/canvasfx/internal/surface"
	"github.com/mavroudis/canvasfx/internal/surface/ebitencanvas"
)

var (
	background   = color.NRGBA{R: 12, G: 16, B: 22, A: 255}
	sectionTints = map[string]color.NRGBA{
		document.Hero:    {R: 12, G: 16, B: 22, A: 255},
		document.About:   {R: 18, G: 24, B: 32, A: 255},
		document.Stealth: {R: 8, G: 10, B: 16, A: 255},
		document.Skyline: {R: 22, G: 30, B: 40, A: 255},
		document.Contact: {R: 14, G: 18, B: 26, A: 255},
	}
	cardColor    = shapes.TorontoLight
	skylineColor = shapes.MiamiLight
)

// anchorKeys are the in-page links, one key per section.
var anchorKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// Page is the ebiten game for the whole page.
type Page struct {
	opts   config.Options
	layout document.Layout
	width  int
	height int
	ready  bool
	hidden bool

	hero       *lifecycle.Controller
	heroCanvas *ebitencanvas.Canvas

	network    *lifecycle.Controller
	graph      *network.Graph
	netCanvas  *ebitencanvas.Canvas
	cursorX    int
	cursorY    int
	overGraph  bool
	pointerLog *scroll.Throttle

	sky      *skyline.Skyline
	skyAnim  *skyline.Animator
	skySeed  int64
	skyWatch *reveal.Observer

	scroller *scroll.Scroller
	reveals  *reveal.Observer
}

// New mounts the effects selected in opts. Nothing is sized until the first
// Layout call, which plays the role of the page-ready signal.
func New(opts config.Options) *Page {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := &Page{
		opts:       opts,
		scroller:   scroll.NewScroller(config.ScrollTicks),
		reveals:    reveal.NewObserver(config.RevealThreshold, config.RevealRootMargin),
		skyWatch:   reveal.NewObserver(config.SkylineThreshold, 0),
		skyAnim:    skyline.NewAnimator(config.SkylineDrawTicks),
		skySeed:    seed,
		pointerLog: scroll.NewThrottle(config.PointerLogEveryMs*time.Millisecond, nil),
	}

	p.heroCanvas = ebitencanvas.New(0, 0)
	p.hero = lifecycle.Mount(config.HeroCanvasID, opts.Hero,
		shapes.NewField(rand.New(rand.NewSource(seed))), p.heroCanvas)

	p.netCanvas = ebitencanvas.New(0, 0)
	p.graph = network.NewGraph(network.DefaultConfig(), rand.New(rand.NewSource(seed+1)))
	p.network = lifecycle.Mount(config.NetworkCanvasID, opts.Network, p.graph, p.netCanvas)

	if !opts.Skyline {
		logging.Logger().Debug("surface absent, effect disabled", "surface", config.SkylinePathID)
	}
	return p
}

// Layout is called by ebiten with the window size. A changed size relays the
// page out and resizes both canvas containers.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !p.ready || outsideWidth != p.width || outsideHeight != p.height {
		p.relayout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (p *Page) relayout(w, h int) {
	p.width, p.height = w, h
	p.layout = document.Build(w, h)
	p.scroller.SetMax(p.layout.MaxScroll())

	hero := p.layout.HeroCanvas()
	net := p.layout.NetworkCanvas()
	if !p.ready {
		p.hero.Init(int(hero.W), int(hero.H))
		p.network.Init(int(net.W), int(net.H))
	} else {
		p.hero.Resize(int(hero.W), int(hero.H))
		p.network.Resize(int(net.W), int(net.H))
	}

	for _, b := range p.layout.Blocks {
		p.reveals.Observe(b.ID, b.Rect)
	}
	if p.opts.Skyline {
		band := p.layout.SkylinePath()
		p.sky = skyline.New(band.W, band.H, p.skySeed)
		p.skyWatch.Observe(config.SkylinePathID, band)
	}

	if !p.ready {
		p.reveals.InitialPass(p.viewport())
		p.ready = true
	}
	logging.Logger().Debug("page laid out", "width", w, "height", h, "document", p.layout.Height)
}

func (p *Page) viewport() surface.Rect {
	return p.layout.ViewportAt(p.scroller.Offset)
}

// Update runs once per tick.
func (p *Page) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	p.handleVisibility()
	p.handleInput()
	p.scroller.Update()
	p.handlePointer()

	for _, id := range p.reveals.Update(p.viewport()) {
		logging.Logger().Debug("revealed", "element", id)
	}
	if len(p.skyWatch.Update(p.viewport())) > 0 {
		p.skyAnim.Trigger()
	}
	p.skyAnim.Tick()

	p.hero.Tick()
	p.network.Tick()
	return nil
}

// handleVisibility treats a minimised or unfocused window as a hidden page.
func (p *Page) handleVisibility() {
	hidden := ebiten.IsWindowMinimized() || !ebiten.IsFocused()
	if hidden == p.hidden {
		return
	}
	p.hidden = hidden
	p.hero.SetHidden(hidden)
	p.network.SetHidden(hidden)
}

// handleInput processes anchor keys and the wheel.
func (p *Page) handleInput() {
	anchors := p.layout.Anchors()
	for i, k := range anchorKeys {
		if inpututil.IsKeyJustPressed(k) && i < len(document.Order) {
			anchors.Follow(p.scroller, document.Order[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		p.scroller.ScrollTo(0)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		p.scroller.ScrollBy(-wy * config.WheelStep)
	}
}

// handlePointer turns cursor motion into pointer-move and pointer-leave
// events for the network surface. Like DOM mouse events, nothing fires when
// the page scrolls under a still cursor.
func (p *Page) handlePointer() {
	if p.network == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx == p.cursorX && my == p.cursorY {
		return
	}
	p.cursorX, p.cursorY = mx, my

	bounds := p.layout.NetworkCanvas()
	px, py := float64(mx), float64(my)+p.scroller.Offset
	if bounds.Contains(px, py) {
		p.overGraph = true
		p.graph.PointerMove(px, py, bounds)
		if p.pointerLog.Allow() {
			ptr := p.graph.Pointer()
			logging.Logger().Debug("pointer", "surface", config.NetworkCanvasID, "x", ptr.X, "y", ptr.Y)
		}
		return
	}
	if p.overGraph {
		p.overGraph = false
		p.graph.PointerLeave()
		logging.Logger().Debug("pointer left", "surface", config.NetworkCanvasID)
	}
}

// Draw composites the page at the current scroll offset.
func (p *Page) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	off := p.scroller.Offset
	view := p.viewport()

	for _, s := range p.layout.Sections {
		if s.Rect.Intersect(view).Area() == 0 {
			continue
		}
		r := s.Rect.Offset(0, -off)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), sectionTints[s.ID], false)
		ebitenutil.DebugPrintAt(screen, s.Title, 48, int(r.Y)+24)
	}

	if p.hero != nil {
		r := p.layout.HeroCanvas()
		p.heroCanvas.DrawTo(screen, r.X, r.Y-off)
	}
	if p.network != nil {
		r := p.layout.NetworkCanvas()
		p.netCanvas.DrawTo(screen, r.X, r.Y-off)
	}

	p.drawBlocks(screen, off)

	if p.sky != nil {
		band := p.layout.SkylinePath()
		p.sky.Draw(ebitencanvas.Wrap(screen), band.X, band.Y-off, p.skyAnim.Progress(), 2, skylineColor)
	}

	state := "running"
	if p.hidden {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  scroll %.0f/%.0f  hero %d  network %d  [1-5] jump  [wheel] scroll  [esc] quit",
		state, off, p.scroller.Max, p.hero.Frames(), p.network.Frames()), 12, p.height-20)
}

// drawBlocks fades revealed blocks in while sliding them up, the way the
// page's reveal transition does.
func (p *Page) drawBlocks(screen *ebiten.Image, off float64) {
	for _, b := range p.layout.Blocks {
		since := p.reveals.Since(b.ID)
		if since < 0 {
			continue
		}
		t := float64(since) / config.RevealTransition
		if t > 1 {
			t = 1
		}
		lift := 30 * (1 - t)
		r := b.Rect.Offset(0, lift-off)
		fill := surface.WithAlpha(cardColor, 0.12*t)
		edge := surface.WithAlpha(cardColor, 0.6*t)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, edge, false)
		if t >= 0.5 {
			ebitenutil.DebugPrintAt(screen, b.Label, int(r.X)+16, int(r.Y)+16)
		}
	}
}
