package surface

import (
	"math"
	"slices"

	"github.com/matzehuels/floorplan/pkg/render/paint"
)

// Surface is a 2D immediate-mode drawing target.
type Surface interface {
	// Save pushes the transform and all paint state.
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()
	Translate(x, y float64)
	// Rotate rotates user space by theta radians, clockwise on screen.
	Rotate(theta float64)
	Scale(sx, sy float64)

	// Clear erases everything drawn so far.
	Clear()

	SetFill(p paint.Paint)
	SetStroke(c paint.Color)
	SetLineWidth(w float64)
	// SetDash sets the stroke dash pattern; no arguments means solid.
	SetDash(pattern ...float64)
	SetShadow(s paint.Shadow)
	SetFontSize(px float64)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	// Arc adds a clockwise circular arc from angle start to end (radians),
	// joined to the current point by a straight line.
	Arc(cx, cy, r, start, end float64)
	RoundedRect(x, y, w, h, r float64)
	ClosePath()
	Fill()
	Stroke()

	// FillText draws s centred horizontally and vertically on (x, y) using
	// the current fill.
	FillText(s string, x, y float64)
}

// PathOp identifies a path segment kind.
type PathOp int

const (
	OpMove PathOp = iota
	OpLine
	OpQuad
	OpArc
	OpClose
)

// Segment is one device-space path segment. For OpQuad, (CX, CY) is the control
// point; for OpArc, (CX, CY) is the centre, R the radius and Start/Sweep the
// angles in radians. (X, Y) is always the segment's end point.
type Segment struct {
	Op           PathOp
	X, Y         float64
	CX, CY       float64
	R            float64
	Start, Sweep float64
}

// state is the paint state pushed by Save.
type state struct {
	m         Matrix
	fill      paint.Paint
	stroke    paint.Color
	lineWidth float64
	dash      []float64
	shadow    paint.Shadow
	fontSize  float64
}

func defaultState() state {
	black := paint.HSL(0, 0, 0)
	return state{
		m:         Identity(),
		fill:      paint.Solid(black),
		stroke:    black,
		lineWidth: 1,
		fontSize:  10,
	}
}

// canvas implements the state and path bookkeeping shared by every backend.
type canvas struct {
	st    state
	stack []state
	path  []Segment
	// cur is the current point in device space; has reports whether it is set.
	curX, curY float64
	has        bool
	// start of the current subpath, restored by ClosePath.
	subX, subY float64
}

func newCanvas() canvas { return canvas{st: defaultState()} }

func (c *canvas) Save() {
	st := c.st
	st.dash = slices.Clone(st.dash)
	c.stack = append(c.stack, st)
}

func (c *canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *canvas) Translate(x, y float64)   { c.st.m = c.st.m.Translate(x, y) }
func (c *canvas) Rotate(theta float64)     { c.st.m = c.st.m.Rotate(theta) }
func (c *canvas) Scale(sx, sy float64)     { c.st.m = c.st.m.Scale(sx, sy) }
func (c *canvas) SetFill(p paint.Paint)    { c.st.fill = p }
func (c *canvas) SetStroke(k paint.Color)  { c.st.stroke = k }
func (c *canvas) SetLineWidth(w float64)   { c.st.lineWidth = w }
func (c *canvas) SetShadow(s paint.Shadow) { c.st.shadow = s }
func (c *canvas) SetFontSize(px float64)   { c.st.fontSize = px }

func (c *canvas) SetDash(pattern ...float64) {
	if len(pattern) == 0 {
		c.st.dash = nil
		return
	}
	c.st.dash = slices.Clone(pattern)
}

// Matrix returns the current transform.
func (c *canvas) Matrix() Matrix { return c.st.m }

func (c *canvas) BeginPath() {
	c.path = c.path[:0]
	c.has = false
}

func (c *canvas) MoveTo(x, y float64) {
	dx, dy := c.st.m.Apply(x, y)
	c.path = append(c.path, Segment{Op: OpMove, X: dx, Y: dy})
	c.curX, c.curY, c.has = dx, dy, true
	c.subX, c.subY = dx, dy
}

func (c *canvas) LineTo(x, y float64) {
	if !c.has {
		c.MoveTo(x, y)
		return
	}
	dx, dy := c.st.m.Apply(x, y)
	c.path = append(c.path, Segment{Op: OpLine, X: dx, Y: dy})
	c.curX, c.curY = dx, dy
}

func (c *canvas) QuadraticTo(cx, cy, x, y float64) {
	if !c.has {
		c.MoveTo(cx, cy)
	}
	dcx, dcy := c.st.m.Apply(cx, cy)
	dx, dy := c.st.m.Apply(x, y)
	c.path = append(c.path, Segment{Op: OpQuad, X: dx, Y: dy, CX: dcx, CY: dcy})
	c.curX, c.curY = dx, dy
}

func (c *canvas) Arc(cx, cy, r, start, end float64) {
	sweep := end - start
	if sweep >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else {
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	rot := c.st.m.Angle()
	dcx, dcy := c.st.m.Apply(cx, cy)
	dr := r * c.st.m.ScaleFactor()
	a0 := start + rot

	sx, sy := dcx+dr*math.Cos(a0), dcy+dr*math.Sin(a0)
	if c.has {
		c.path = append(c.path, Segment{Op: OpLine, X: sx, Y: sy})
	} else {
		c.path = append(c.path, Segment{Op: OpMove, X: sx, Y: sy})
		c.subX, c.subY, c.has = sx, sy, true
	}
	ex, ey := dcx+dr*math.Cos(a0+sweep), dcy+dr*math.Sin(a0+sweep)
	c.path = append(c.path, Segment{Op: OpArc, X: ex, Y: ey, CX: dcx, CY: dcy, R: dr, Start: a0, Sweep: sweep})
	c.curX, c.curY = ex, ey
}

func (c *canvas) ClosePath() {
	if !c.has {
		return
	}
	c.path = append(c.path, Segment{Op: OpClose, X: c.subX, Y: c.subY})
	c.curX, c.curY = c.subX, c.subY
}

// rect adds a closed rectangle subpath.
func (c *canvas) rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *canvas) RoundedRect(x, y, w, h, r float64) {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		c.rect(x, y, w, h)
		return
	}
	c.MoveTo(x+r, y)
	c.LineTo(x+w-r, y)
	c.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	c.LineTo(x+w, y+h-r)
	c.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	c.LineTo(x+r, y+h)
	c.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	c.LineTo(x, y+r)
	c.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	c.ClosePath()
}

// rectPath returns a standalone rectangle path without disturbing the
// current path, as canvas fillRect and strokeRect do.
func (c *canvas) rectPath(x, y, w, h float64) []Segment {
	saved, has := c.path, c.has
	cx, cy, sx, sy := c.curX, c.curY, c.subX, c.subY
	c.path, c.has = nil, false
	c.rect(x, y, w, h)
	out := c.path
	c.path, c.has = saved, has
	c.curX, c.curY, c.subX, c.subY = cx, cy, sx, sy
	return out
}

// devicePaint maps a user-space paint into device space.
func (c *canvas) devicePaint(p paint.Paint) paint.Paint {
	if p.Gradient == nil {
		return p
	}
	g := *p.Gradient
	m := c.st.m
	g.X0, g.Y0 = m.Apply(g.X0, g.Y0)
	g.X1, g.Y1 = m.Apply(g.X1, g.Y1)
	s := m.ScaleFactor()
	g.R0 *= s
	g.R1 *= s
	return paint.Paint{Gradient: &g}
}

// deviceLine returns the line width and dash pattern in device units.
func (c *canvas) deviceLine() (float64, []float64) {
	s := c.st.m.ScaleFactor()
	var dash []float64
	for _, d := range c.st.dash {
		dash = append(dash, d*s)
	}
	return c.st.lineWidth * s, dash
}

// bounds returns the device-space bounding box of the path control points.
func bounds(path []Segment) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	for _, s := range path {
		grow(s.X, s.Y)
		switch s.Op {
		case OpQuad:
			grow(s.CX, s.CY)
		case OpArc:
			grow(s.CX-s.R, s.CY-s.R)
			grow(s.CX+s.R, s.CY+s.R)
		}
	}
	return
}
