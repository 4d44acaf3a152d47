package elements

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/surface"
)

// Renderer draws elements with a theme.
type Renderer struct {
	theme paint.Theme
	rng   *rand.Rand
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRand sets the random source used by plants.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) { r.rng = rng }
}

// New returns a renderer. Without [WithRand] plants vary between frames.
func New(theme paint.Theme, opts ...Option) *Renderer {
	r := &Renderer{theme: theme}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return r
}

// Render draws e. Elements of unknown type and nil surfaces are ignored.
func (r *Renderer) Render(s surface.Surface, e floor.Element) {
	if s == nil || e.Props == nil {
		return
	}
	if _, ok := e.Props.(floor.Unknown); ok {
		return
	}

	s.Save()
	defer s.Restore()
	s.Translate(e.X, e.Y)
	if e.Rotation != 0 {
		s.Rotate(e.Rotation * math.Pi / 180)
	}

	switch p := e.Props.(type) {
	case floor.Wall:
		r.wall(s, floor.Point{X: e.X, Y: e.Y}, p)
	case floor.Door:
		r.door(s, p)
	case floor.Window:
		r.window(s, p)
	case floor.Plant:
		r.plant(s, p)
	case floor.Bar:
		r.bar(s, p)
	case floor.Column:
		r.column(s, p)
	case floor.Stairs:
		r.stairs(s, p)
	case floor.Artwork:
		r.artwork(s, p)
	case floor.Carpet:
		r.carpet(s, p)
	case floor.Fireplace:
		r.fireplace(s, p)
	}
}

// RenderAll draws elements in order.
func (r *Renderer) RenderAll(s surface.Surface, elems []floor.Element) {
	for _, e := range elems {
		r.Render(s, e)
	}
}

func circle(s surface.Surface, x, y, radius float64) {
	s.BeginPath()
	s.Arc(x, y, radius, 0, 2*math.Pi)
}

func line(s surface.Surface, x0, y0, x1, y1 float64) {
	s.BeginPath()
	s.MoveTo(x0, y0)
	s.LineTo(x1, y1)
	s.Stroke()
}
