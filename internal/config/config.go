package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/mavroudis/canvasfx/internal/logging"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	TPS          = 60

	// Hero field
	ShapeAreaPerShape = 50000
	ShapeMinSize      = 20
	ShapeSizeRange    = 60
	ShapeMaxSpin      = 0.01
	ShapeMinAlpha     = 0.05
	ShapeAlphaRange   = 0.15
	ShapeLineWidth    = 1

	// Node network
	NodeCount          = 50
	ConnectionDistance = 150
	NodeSpeed          = 0.5
	NodeSize           = 3
	LineWidth          = 0.5
	PointerReach       = 1.5
	LinkMaxAlpha       = 0.3
	PointerMaxAlpha    = 0.5

	// Reveal / skyline
	RevealThreshold   = 0.1
	RevealRootMargin  = 50
	RevealTransition  = 36
	SkylineThreshold  = 0.5
	SkylineDrawTicks  = 120
	ScrollTicks       = 36
	WheelStep         = 60
	PointerLogEveryMs = 250
)

// Surface element ids, as named by the host page.
const (
	HeroCanvasID    = "hero-canvas"
	NetworkCanvasID = "stealth-canvas"
	SkylinePathID   = "skyline"
)

// Options are the command line settings for the page binary.
type Options struct {
	Width    int
	Height   int
	TPS      int
	Hero     bool
	Network  bool
	Skyline  bool
	Seed     int64
	LogLevel slog.Level
}

// Parse reads page options from args (without the program name).
func Parse(args []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet("canvasfx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o Options
	var level string
	fs.IntVar(&o.Width, "width", WindowWidth, "window width")
	fs.IntVar(&o.Height, "height", WindowHeight, "window height")
	fs.IntVar(&o.TPS, "tps", TPS, "frames per second")
	fs.BoolVar(&o.Hero, "hero", true, "mount the rotating-shapes hero canvas")
	fs.BoolVar(&o.Network, "network", true, "mount the node-network canvas")
	fs.BoolVar(&o.Skyline, "skyline", true, "mount the skyline path")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.StringVar(&level, "log-level", "warn", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return Options{}, fmt.Errorf("window size %dx%d: %w", o.Width, o.Height, ErrBadSize)
	}
	if o.TPS <= 0 {
		return Options{}, fmt.Errorf("tps %d: %w", o.TPS, ErrBadSize)
	}
	lv, err := logging.ParseLevel(level)
	if err != nil {
		return Options{}, fmt.Errorf("parse -log-level: %w", err)
	}
	o.LogLevel = lv
	return o, nil
}

// ErrBadSize reports a non-positive dimension or rate.
var ErrBadSize = errors.New("must be positive")

// Page geometry
const (
	StealthMinHeight  = 360
	SkylineBandHeight = 180
)
