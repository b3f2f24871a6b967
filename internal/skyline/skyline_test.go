package skyline

import (
	"image/color"
	"math"
	"testing"

	"github.com/mavroudis/canvasfx/internal/surface"
)

func TestNewShape(t *testing.T) {
	s := New(800, 200, 42)
	if len(s.Points) < 4 {
		t.Fatalf("got %d points, want a silhouette", len(s.Points))
	}
	first, last := s.Points[0], s.Points[len(s.Points)-1]
	if first != (surface.Point{X: 0, Y: 200}) {
		t.Errorf("first point = %v, want (0, 200)", first)
	}
	if last != (surface.Point{X: 800, Y: 200}) {
		t.Errorf("last point = %v, want (800, 200)", last)
	}
	prevX := 0.0
	for i, p := range s.Points {
		if p.X < prevX {
			t.Errorf("point %d x = %v goes backwards from %v", i, p.X, prevX)
		}
		prevX = p.X
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 200 {
			t.Errorf("point %d = %v outside the band", i, p)
		}
	}
	// Roofs stay between 20% and 90% of the band height.
	for i := 1; i < len(s.Points)-1; i++ {
		h := 200 - s.Points[i].Y
		if h < 40-1e-9 || h > 180+1e-9 {
			t.Errorf("point %d roof height %v outside [40, 180]", i, h)
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	a := New(600, 150, 7)
	b := New(600, 150, 7)
	if len(a.Points) != len(b.Points) || a.Length() != b.Length() {
		t.Fatal("same seed produced different skylines")
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestNewEmptyBand(t *testing.T) {
	s := New(0, 100, 1)
	if len(s.Points) != 0 || s.Length() != 0 {
		t.Errorf("empty band produced %d points, length %v", len(s.Points), s.Length())
	}
	rec := surface.NewRecorder()
	s.Draw(rec, 0, 0, 1, 2, color.White)
	if len(rec.Ops) != 0 {
		t.Errorf("empty skyline drew %d ops", len(rec.Ops))
	}
}

func drawnLength(rec *surface.Recorder) float64 {
	total := 0.0
	for _, op := range rec.Filter(surface.OpLine) {
		a, b := op.Points[0], op.Points[1]
		total += math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	return total
}

func TestDrawProgress(t *testing.T) {
	s := New(800, 200, 3)
	for _, p := range []float64{0, 0.25, 0.5, 1, 2} {
		rec := surface.NewRecorder()
		s.Draw(rec, 0, 0, p, 2, color.White)
		want := math.Min(p, 1) * s.Length()
		if got := drawnLength(rec); math.Abs(got-want) > 1e-6 {
			t.Errorf("Draw(progress=%v) drew length %v, want %v", p, got, want)
		}
		if rec.Depth() != 0 {
			t.Errorf("Draw(progress=%v) left save depth %d", p, rec.Depth())
		}
	}
}

func TestDrawOffset(t *testing.T) {
	s := New(400, 100, 5)
	rec := surface.NewRecorder()
	s.Draw(rec, 10, 500, 1, 2, color.White)
	first := rec.Filter(surface.OpLine)[0].Points[0]
	if first != (surface.Point{X: 10, Y: 600}) {
		t.Errorf("first drawn point = %v, want (10, 600)", first)
	}
}

func TestAnimator(t *testing.T) {
	a := NewAnimator(10)
	a.Tick()
	if a.Progress() != 0 || a.Triggered() {
		t.Fatalf("untriggered animator progressed to %v", a.Progress())
	}
	a.Trigger()
	prev := 0.0
	for i := 0; i < 10; i++ {
		a.Tick()
		p := a.Progress()
		if p <= prev {
			t.Errorf("tick %d: progress %v not above %v", i, p, prev)
		}
		prev = p
	}
	if !a.Done() || a.Progress() != 1 {
		t.Errorf("after duration: Done() = %v, Progress() = %v", a.Done(), a.Progress())
	}
	a.Tick()
	if a.Progress() != 1 {
		t.Errorf("progress past duration = %v, want 1", a.Progress())
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
