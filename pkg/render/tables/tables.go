// Package tables draws restaurant tables onto a [surface.Surface].
//
// A table is painted centred on its position: a shadowed body with a radial
// gradient (a circle, or a rounded square at 80% of the table size), a
// highlight for depth, the table name, and its "min-max" capacity on a small
// backing plate. Selected tables use the accent hue, a heavier outline and a
// stronger shadow.
package tables

import (
	"math"
	"strconv"

	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/surface"
)

const (
	nameFontSize     = 12
	capacityFontSize = 10
	capacityOffset   = 15
	cornerRatio      = 0.12
	plateCharWidth   = 6
	platePadding     = 8
	plateHeight      = 14
)

// Renderer draws tables with a theme.
type Renderer struct {
	theme paint.Theme
}

// New returns a table renderer.
func New(theme paint.Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render draws t. Nil surfaces are ignored.
func (r *Renderer) Render(s surface.Surface, t floor.Table, selected bool) {
	if s == nil {
		return
	}
	s.Save()
	defer s.Restore()
	s.Translate(t.X, t.Y)
	if t.Rotation != 0 {
		s.Rotate(t.Rotation * math.Pi / 180)
	}

	size := t.Size()
	strokeColor, strokeWidth := r.theme.TableStroke(selected)

	s.SetShadow(paint.TableShadow(selected))
	s.SetFill(r.theme.TableFill(size, selected))
	s.SetStroke(strokeColor)
	s.SetLineWidth(strokeWidth)

	s.BeginPath()
	if t.Shape == floor.ShapeRectangular {
		rs := t.RectSize()
		s.RoundedRect(-rs/2, -rs/2, rs, rs, rs*cornerRatio)
	} else {
		s.Arc(0, 0, size/2, 0, 2*math.Pi)
	}
	s.Fill()
	s.SetShadow(paint.Shadow{})
	s.Stroke()

	r.highlight(s, t)
	r.labels(s, t)
}

// highlight adds an arc near the top-left rim of round tables, or a stripe
// across the top of rectangular ones.
func (r *Renderer) highlight(s surface.Surface, t floor.Table) {
	if t.Shape == floor.ShapeRectangular {
		rs := t.RectSize()
		s.SetFill(paint.Solid(paint.TableHighlight()))
		s.FillRect(-rs/2+4, -rs/2+4, rs-8, rs*0.15)
		return
	}
	s.SetStroke(paint.TableHighlight())
	s.SetLineWidth(2)
	s.BeginPath()
	s.Arc(0, 0, t.Size()/2-4, math.Pi*1.1, math.Pi*1.6)
	s.Stroke()
}

func (r *Renderer) labels(s surface.Surface, t floor.Table) {
	s.SetFill(paint.Solid(r.theme.Label))
	s.SetFontSize(nameFontSize)
	s.FillText(t.Name, 0, 0)

	capacity := strconv.Itoa(t.Capacity.Min) + "-" + strconv.Itoa(t.Capacity.Max)
	pw := float64(len(capacity)*plateCharWidth + platePadding)
	s.SetFill(paint.Solid(paint.LabelPlate()))
	s.BeginPath()
	s.RoundedRect(-pw/2, capacityOffset-plateHeight/2, pw, plateHeight, plateHeight/2)
	s.Fill()

	s.SetFill(paint.Solid(r.theme.Label))
	s.SetFontSize(capacityFontSize)
	s.FillText(capacity, 0, capacityOffset)
}
