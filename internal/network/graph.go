// Package network implements the node-network background: drifting nodes
// bounce inside the surface, nearby nodes are linked by fading lines, and
// nodes near the pointer link to it.
package network

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/mavroudis/canvasfx/internal/config"
	"github.com/mavroudis/canvasfx/internal/logging"
	"github.com/mavroudis/canvasfx/internal/surface"
)

var (
	nodeColor    = color.NRGBA{R: 0, G: 217, B: 255, A: 153} // rgba(0, 217, 255, 0.6)
	linkColor    = color.NRGBA{R: 255, G: 107, B: 107, A: 255}
	pointerColor = color.NRGBA{R: 0, G: 217, B: 255, A: 255}
)

// Config holds the graph tunables.
type Config struct {
	NodeCount          int
	ConnectionDistance float64
	NodeSpeed          float64
	NodeSize           float64
	LineWidth          float64
}

// DefaultConfig returns the page's settings.
func DefaultConfig() Config {
	return Config{
		NodeCount:          config.NodeCount,
		ConnectionDistance: config.ConnectionDistance,
		NodeSpeed:          config.NodeSpeed,
		NodeSize:           config.NodeSize,
		LineWidth:          config.LineWidth,
	}
}

// Node is a moving point.
type Node struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity, pixels per frame
}

// Pointer is the last known pointer position relative to the surface's
// top-left corner.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Graph owns the nodes and pointer state for one surface.
type Graph struct {
	Width, Height int
	cfg           Config
	nodes         []Node
	pointer       Pointer
	rng           *rand.Rand
}

// NewGraph creates an empty graph. Call Resize to populate it.
func NewGraph(cfg Config, rng *rand.Rand) *Graph {
	return &Graph{cfg: cfg, rng: rng}
}

// Config returns the graph settings.
func (g *Graph) Config() Config { return g.cfg }

// Nodes returns the live nodes.
func (g *Graph) Nodes() []Node { return g.nodes }

// Pointer returns the current pointer state.
func (g *Graph) Pointer() Pointer { return g.pointer }

// Resize applies the container size and regenerates all nodes.
func (g *Graph) Resize(w, h int) {
	g.Width, g.Height = w, h
	g.Generate()
	logging.Logger().Debug("node network resized", "width", w, "height", h, "nodes", len(g.nodes))
}

// Generate replaces the nodes with NodeCount fresh ones spread uniformly over
// the surface, each with velocity components in [-NodeSpeed/2, NodeSpeed/2).
func (g *Graph) Generate() {
	g.nodes = make([]Node, g.cfg.NodeCount)
	for i := range g.nodes {
		g.nodes[i] = Node{
			X:  g.rng.Float64() * float64(g.Width),
			Y:  g.rng.Float64() * float64(g.Height),
			VX: (g.rng.Float64() - 0.5) * g.cfg.NodeSpeed,
			VY: (g.rng.Float64() - 0.5) * g.cfg.NodeSpeed,
		}
	}
}

// PointerMove records a pointer at page position (x, y) over a surface
// occupying bounds.
func (g *Graph) PointerMove(x, y float64, bounds surface.Rect) {
	g.pointer = Pointer{X: x - bounds.X, Y: y - bounds.Y, Present: true}
}

// PointerLeave clears the pointer.
func (g *Graph) PointerLeave() {
	g.pointer = Pointer{}
}

// LinkAlpha is the opacity of a node-node line at distance d.
func (g *Graph) LinkAlpha(d float64) float64 {
	return fade(d, g.cfg.ConnectionDistance, config.LinkMaxAlpha)
}

// PointerAlpha is the opacity of a node-pointer line at distance d.
func (g *Graph) PointerAlpha(d float64) float64 {
	return fade(d, g.cfg.ConnectionDistance*config.PointerReach, config.PointerMaxAlpha)
}

// fade falls linearly from peak at distance 0 to 0 at threshold.
func fade(d, threshold, peak float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	return (1 - d/threshold) * peak
}

// Step moves every node one frame and redraws the graph.
//
// Node i is moved before its links are drawn, so links to nodes j > i use
// j's position from the previous frame.
func (g *Graph) Step(c surface.Canvas) {
	c.Clear()

	w, h := float64(g.Width), float64(g.Height)
	linkReach := g.cfg.ConnectionDistance
	pointerReach := g.cfg.ConnectionDistance * config.PointerReach

	for i := range g.nodes {
		n := &g.nodes[i]

		n.X += n.VX
		n.Y += n.VY
		if n.X < 0 || n.X > w {
			n.VX = -n.VX
		}
		if n.Y < 0 || n.Y > h {
			n.VY = -n.VY
		}

		c.FillCircle(n.X, n.Y, g.cfg.NodeSize, nodeColor)

		for j := i + 1; j < len(g.nodes); j++ {
			o := &g.nodes[j]
			d := math.Hypot(n.X-o.X, n.Y-o.Y)
			if d < linkReach {
				c.StrokeLine(n.X, n.Y, o.X, o.Y, g.cfg.LineWidth, surface.WithAlpha(linkColor, g.LinkAlpha(d)))
			}
		}

		if g.pointer.Present {
			d := math.Hypot(n.X-g.pointer.X, n.Y-g.pointer.Y)
			if d < pointerReach {
				c.StrokeLine(n.X, n.Y, g.pointer.X, g.pointer.Y, g.cfg.LineWidth*2, surface.WithAlpha(pointerColor, g.PointerAlpha(d)))
			}
		}
	}
}
