package surface

import (
	"slices"

	"github.com/matzehuels/floorplan/pkg/render/paint"
)

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpKindFill   OpKind = "fill"
	OpKindStroke OpKind = "stroke"
	OpKindText   OpKind = "text"
	OpKindClear  OpKind = "clear"
)

// Op is one recorded drawing operation with its device-space geometry and the
// paint state in effect.
type Op struct {
	Kind      OpKind
	Path      []Segment
	Fill      paint.Paint
	Stroke    paint.Color
	LineWidth float64
	Dash      []float64
	Shadow    paint.Shadow
	Text      string
	X, Y      float64
	FontSize  float64
	Matrix    Matrix
}

// Bounds returns the device-space bounding box of the operation.
func (o Op) Bounds() (minX, minY, maxX, maxY float64) {
	if o.Kind == OpKindText {
		return o.X, o.Y, o.X, o.Y
	}
	return bounds(o.Path)
}

// Center returns the centre of the operation's bounding box.
func (o Op) Center() (x, y float64) {
	x0, y0, x1, y1 := o.Bounds()
	return (x0 + x1) / 2, (y0 + y1) / 2
}

// Recorder is a Surface that records drawing operations instead of painting.
type Recorder struct {
	canvas
	Ops []Op
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{canvas: newCanvas()} }

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stack) }

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings drawn with FillText, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpKindText) {
		out = append(out, op.Text)
	}
	return out
}

// Reset discards recorded operations and state.
func (r *Recorder) Reset() {
	r.canvas = newCanvas()
	r.Ops = nil
}

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpKindClear}) }

func (r *Recorder) FillRect(x, y, w, h float64)   { r.record(OpKindFill, r.rectPath(x, y, w, h)) }
func (r *Recorder) StrokeRect(x, y, w, h float64) { r.record(OpKindStroke, r.rectPath(x, y, w, h)) }
func (r *Recorder) Fill()                         { r.record(OpKindFill, r.path) }
func (r *Recorder) Stroke()                       { r.record(OpKindStroke, r.path) }

func (r *Recorder) FillText(text string, x, y float64) {
	op := r.op(OpKindText, nil)
	op.Text = text
	op.X, op.Y = r.st.m.Apply(x, y)
	op.FontSize = r.st.fontSize * r.st.m.ScaleFactor()
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) record(kind OpKind, path []Segment) {
	if len(path) == 0 {
		return
	}
	r.Ops = append(r.Ops, r.op(kind, path))
}

func (r *Recorder) op(kind OpKind, path []Segment) Op {
	w, dash := r.deviceLine()
	return Op{
		Kind:      kind,
		Path:      slices.Clone(path),
		Fill:      r.devicePaint(r.st.fill),
		Stroke:    r.st.stroke,
		LineWidth: w,
		Dash:      dash,
		Shadow:    r.st.shadow,
		Matrix:    r.st.m,
	}
}

var _ Surface = (*Recorder)(nil)
