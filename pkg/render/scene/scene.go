// Package scene composes a full floor plan frame onto a [surface.Surface].
//
// Each frame is painted in a fixed order:
//
//  1. clear the surface
//  2. apply the viewport transform (scale by zoom, then translate by pan)
//  3. fill the canvas background
//  4. draw the grid
//  5. draw elements, lowest layer first
//  6. draw active tables, highlighting the selected one
//
// Tables always sit above elements regardless of element layer.
package scene

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/render/elements"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/surface"
	"github.com/matzehuels/floorplan/pkg/render/tables"
	"github.com/matzehuels/floorplan/pkg/viewport"
)

const (
	gridLineWidth = 0.5
	// minScreenPitch is the smallest on-screen grid spacing before the
	// adaptive grid doubles its pitch.
	minScreenPitch = 12.0
	minGridAlpha   = 0.4
)

// Frame is everything needed to paint one frame.
type Frame struct {
	View     viewport.View
	Tables   []floor.Table
	Elements []floor.Element
	Selected string
}

// Composer paints frames. It never mutates the data it is given.
type Composer struct {
	cfg      config.Canvas
	theme    paint.Theme
	rng      *rand.Rand
	elements *elements.Renderer
	tables   *tables.Renderer
}

// Option configures a Composer.
type Option func(*Composer)

// WithTheme sets the palette.
func WithTheme(t paint.Theme) Option {
	return func(c *Composer) { c.theme = t }
}

// WithRand sets the random source for procedural elements.
func WithRand(rng *rand.Rand) Option {
	return func(c *Composer) { c.rng = rng }
}

// New returns a composer for a canvas.
func New(cfg config.Canvas, opts ...Option) *Composer {
	c := &Composer{cfg: cfg, theme: paint.DefaultTheme()}
	for _, opt := range opts {
		opt(c)
	}
	var eopts []elements.Option
	if c.rng != nil {
		eopts = append(eopts, elements.WithRand(c.rng))
	}
	c.elements = elements.New(c.theme, eopts...)
	c.tables = tables.New(c.theme)
	return c
}

// Size returns the canvas size in pixels.
func (c *Composer) Size() (width, height float64) { return c.cfg.Width, c.cfg.Height }

// Compose paints f onto s. A nil surface is a no-op.
func (c *Composer) Compose(s surface.Surface, f Frame) {
	if s == nil {
		return
	}
	s.Clear()
	s.Save()
	defer s.Restore()

	s.Scale(f.View.Zoom, f.View.Zoom)
	s.Translate(f.View.Pan.X, f.View.Pan.Y)

	s.SetFill(paint.Solid(c.theme.Background))
	s.FillRect(0, 0, c.cfg.Width, c.cfg.Height)

	c.grid(s, f.View.Zoom)

	c.elements.RenderAll(s, SortByLayer(f.Elements))
	for _, t := range f.Tables {
		if !t.Active() {
			continue
		}
		c.tables.Render(s, t, t.ID == f.Selected)
	}
}

func (c *Composer) grid(s surface.Surface, zoom float64) {
	pitch, alpha := GridStyle(c.cfg, zoom)
	if pitch <= 0 {
		return
	}
	s.SetStroke(c.theme.Grid.WithAlpha(alpha))
	s.SetLineWidth(gridLineWidth)
	s.BeginPath()
	for x := 0.0; x <= c.cfg.Width; x += pitch {
		s.MoveTo(x, 0)
		s.LineTo(x, c.cfg.Height)
	}
	for y := 0.0; y <= c.cfg.Height; y += pitch {
		s.MoveTo(0, y)
		s.LineTo(c.cfg.Width, y)
	}
	s.Stroke()
}

// GridStyle returns the grid pitch in world units and the line opacity at a
// zoom level. Without an adaptive grid the pitch is the snapping grid size at
// full opacity. With it, the pitch doubles until lines are at least 12 screen
// pixels apart, and lines fade when zoomed in so they do not thicken.
func GridStyle(cfg config.Canvas, zoom float64) (pitch, alpha float64) {
	pitch = cfg.GridSize
	if !cfg.AdaptiveGrid || pitch <= 0 || zoom <= 0 {
		return pitch, 1
	}
	for pitch*zoom < minScreenPitch {
		pitch *= 2
	}
	alpha = math.Max(minGridAlpha, math.Min(1, 1/zoom))
	return pitch, alpha
}

// SortByLayer returns the elements ordered by ascending layer. Elements on the
// same layer keep their relative order.
func SortByLayer(elems []floor.Element) []floor.Element {
	out := slices.Clone(elems)
	slices.SortStableFunc(out, func(a, b floor.Element) int { return cmp.Compare(a.Layer, b.Layer) })
	return out
}
