package surface

import "image/color"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Op is one recorded operation. Points are in surface space with the
// transform in effect at the time of the call already applied: four
// corners for a rect, the centre for a circle, both endpoints for a line.
type Op struct {
	Kind      OpKind
	Points    []Point
	Radius    float64
	LineWidth float64
	Color     color.Color
}

// Recorder is a Canvas that keeps every operation in memory.
type Recorder struct {
	Ops   []Op
	m     Matrix
	stack []Matrix
}

// NewRecorder returns an empty recorder with an identity transform.
func NewRecorder() *Recorder {
	return &Recorder{m: Identity()}
}

// Reset drops recorded ops and the transform stack.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.m = Identity()
	r.stack = r.stack[:0]
}

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of kind k in call order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Depth returns the current save stack depth.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.m)
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.m = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) { r.m = r.m.Translate(x, y) }

func (r *Recorder) Rotate(angle float64) { r.m = r.m.Rotate(angle) }

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:      OpRect,
		Points:    []Point{r.apply(x, y), r.apply(x+w, y), r.apply(x+w, y+h), r.apply(x, y+h)},
		LineWidth: lineWidth,
		Color:     c,
	})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpCircle,
		Points: []Point{r.apply(x, y)},
		Radius: radius,
		Color:  c,
	})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:      OpLine,
		Points:    []Point{r.apply(x1, y1), r.apply(x2, y2)},
		LineWidth: lineWidth,
		Color:     c,
	})
}

func (r *Recorder) apply(x, y float64) Point {
	px, py := r.m.Apply(x, y)
	return Point{X: px, Y: py}
}
