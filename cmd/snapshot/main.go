// Command snapshot renders the hero field and the node network offscreen and
// writes one PNG per effect.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/mavroudis/canvasfx/internal/lifecycle"
	"github.com/mavroudis/canvasfx/internal/logging"
	"github.com/mavroudis/canvasfx/internal/network"
	"github.com/mavroudis/canvasfx/internal/shapes"
	"github.com/mavroudis/canvasfx/internal/surface"
	"github.com/mavroudis/canvasfx/internal/surface/ggcanvas"
)

func main() {
	width := flag.Int("width", 1280, "surface width")
	height := flag.Int("height", 720, "surface height")
	frames := flag.Int("frames", 120, "frames to simulate before capture")
	out := flag.String("out", ".", "output directory")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	lv, err := logging.ParseLevel(*level)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv})))

	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid size %dx%d", *width, *height)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	graph := network.NewGraph(network.DefaultConfig(), rand.New(rand.NewSource(*seed+1)))
	effects := []struct {
		file string
		anim lifecycle.Animation
		prep func()
	}{
		{"hero.png", shapes.NewField(rand.New(rand.NewSource(*seed))), nil},
		{"network.png", graph, func() {
			bounds := surface.Rect{W: float64(*width), H: float64(*height)}
			graph.PointerMove(bounds.W/2, bounds.H/2, bounds)
		}},
	}

	for _, e := range effects {
		path := filepath.Join(*out, e.file)
		if err := render(e.anim, e.prep, *width, *height, *frames, path); err != nil {
			log.Fatal(err)
		}
		logging.Logger().Info("snapshot written", "file", path, "frames", *frames)
	}
}

// render runs frames steps of anim through a lifecycle controller on a gg
// canvas and saves the last frame.
func render(anim lifecycle.Animation, prep func(), w, h, frames int, path string) error {
	canvas := ggcanvas.New(w, h)
	defer canvas.Close()

	c := lifecycle.Mount(filepath.Base(path), true, anim, canvas)
	c.Init(w, h)
	if prep != nil {
		prep()
	}
	for i := 0; i < max(frames, 1); i++ {
		c.Tick()
	}
	if err := canvas.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
