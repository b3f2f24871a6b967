package shapes

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/mavroudis/canvasfx/internal/surface"
)

func newTestField(seed int64) *Field {
	return NewField(rand.New(rand.NewSource(seed)))
}

func TestCount(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{800, 600, 9},
		{1920, 1080, 41},
		{0, 600, 0},
		{800, 0, 0},
		{0, 0, 0},
		{100, 100, 0},
		{250, 200, 1},
	}
	for _, tt := range tests {
		if got := Count(tt.w, tt.h); got != tt.want {
			t.Errorf("Count(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestResizeRegeneratesWithinBounds(t *testing.T) {
	f := newTestField(1)
	sizes := [][2]int{{800, 600}, {1920, 1080}, {320, 480}, {0, 0}, {1024, 768}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		f.Resize(w, h)
		shapes := f.Shapes()
		if len(shapes) != (w*h)/50000 {
			t.Fatalf("Resize(%d, %d): %d shapes, want %d", w, h, len(shapes), (w*h)/50000)
		}
		for i, s := range shapes {
			if s.X < 0 || s.X > float64(w) || s.Y < 0 || s.Y > float64(h) {
				t.Errorf("shape %d at (%v, %v) outside %dx%d", i, s.X, s.Y, w, h)
			}
		}
	}
}

func TestGenerateRanges(t *testing.T) {
	f := newTestField(42)
	f.Resize(4000, 4000)
	for i, s := range f.Shapes() {
		if s.Size < 20 || s.Size >= 80 {
			t.Errorf("shape %d size %v outside [20, 80)", i, s.Size)
		}
		if s.Rotation < 0 || s.Rotation >= 2*math.Pi {
			t.Errorf("shape %d rotation %v outside [0, 2pi)", i, s.Rotation)
		}
		if s.RotationSpeed < -0.01 || s.RotationSpeed >= 0.01 {
			t.Errorf("shape %d speed %v outside [-0.01, 0.01)", i, s.RotationSpeed)
		}
		if s.Alpha < 0.05 || s.Alpha >= 0.20 {
			t.Errorf("shape %d alpha %v outside [0.05, 0.20)", i, s.Alpha)
		}
		want := Toronto
		if i%2 == 1 {
			want = Miami
		}
		if s.Color != want {
			t.Errorf("shape %d color %v, want %v", i, s.Color, want)
		}
	}
}

func TestStepAdvancesRotation(t *testing.T) {
	f := newTestField(7)
	f.Resize(800, 600)

	before := make([]Shape, len(f.Shapes()))
	copy(before, f.Shapes())

	rec := surface.NewRecorder()
	f.Step(rec)
	f.Step(rec)

	for i, s := range f.Shapes() {
		want := before[i].Rotation + 2*before[i].RotationSpeed
		if math.Abs(s.Rotation-want) > 1e-12 {
			t.Errorf("shape %d rotation = %v, want %v", i, s.Rotation, want)
		}
		if s.X != before[i].X || s.Y != before[i].Y {
			t.Errorf("shape %d moved from (%v, %v) to (%v, %v)", i, before[i].X, before[i].Y, s.X, s.Y)
		}
	}
}

func TestStepDraws(t *testing.T) {
	f := newTestField(3)
	f.Resize(800, 600)
	s0 := f.Shapes()[0]

	rec := surface.NewRecorder()
	f.Step(rec)

	if rec.Ops[0].Kind != surface.OpClear {
		t.Fatalf("first op = %v, want clear", rec.Ops[0].Kind)
	}
	rects := rec.Filter(surface.OpRect)
	if len(rects) != 9 {
		t.Fatalf("drew %d rects, want 9", len(rects))
	}
	if rec.Depth() != 0 {
		t.Errorf("save stack depth = %d after Step, want 0", rec.Depth())
	}

	// Corners of a rotated square stay at distance size/sqrt(2) from its centre.
	r := rects[0]
	wantDist := s0.Size / math.Sqrt2
	for i, p := range r.Points {
		d := math.Hypot(p.X-s0.X, p.Y-s0.Y)
		if math.Abs(d-wantDist) > 1e-9 {
			t.Errorf("corner %d at distance %v from centre, want %v", i, d, wantDist)
		}
	}
	c, ok := r.Color.(color.NRGBA)
	if !ok {
		t.Fatalf("rect color is %T, want color.NRGBA", r.Color)
	}
	if want := surface.WithAlpha(s0.Color, s0.Alpha); c != want {
		t.Errorf("rect color = %v, want %v", c, want)
	}
	if r.LineWidth != 1 {
		t.Errorf("line width = %v, want 1", r.LineWidth)
	}
}

func TestStepEmptyField(t *testing.T) {
	f := newTestField(1)
	f.Resize(0, 0)
	rec := surface.NewRecorder()
	f.Step(rec)
	if len(rec.Ops) != 1 || rec.Ops[0].Kind != surface.OpClear {
		t.Errorf("empty field recorded %v, want a single clear", rec.Ops)
	}
}
