package elements

import (
	"cmp"

	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/surface"
)

const (
	defaultBarWidth  = 200.0
	defaultBarHeight = 60.0
	barHighlight     = 10.0
	stoolRadius      = 12.0
	stoolGap         = 25.0
	stoolLeg         = 20.0

	defaultArtWidth  = 80.0
	defaultArtHeight = 60.0
	artFrame         = 6.0

	defaultCarpetWidth  = 120.0
	defaultCarpetHeight = 80.0
	geometricSpacing    = 20.0
	geometricTile       = 10.0
	floralSpacing       = 40.0
	floralInset         = 20.0
	floralRadius        = 5.0

	defaultFireplaceWidth  = 120.0
	defaultFireplaceHeight = 100.0
	mantleDepth            = 8.0
	flameCount             = 3
	flameLean              = 10.0

	leafCount = 5
)

// plant draws a trapezoidal pot and, depending on the plant type, a tree, a
// bush or potted stems with leaves.
func (r *Renderer) plant(s surface.Surface, p floor.Plant) {
	size := paint.PlantSize(p.Size)

	s.SetFill(paint.Solid(paint.PotColor(p.PotStyle)))
	s.SetStroke(r.theme.Border)
	s.SetLineWidth(1)
	s.BeginPath()
	s.MoveTo(-size/3, size/3)
	s.LineTo(size/3, size/3)
	s.LineTo(size/4, size*2/3)
	s.LineTo(-size/4, size*2/3)
	s.ClosePath()
	s.Fill()
	s.Stroke()

	switch p.PlantType {
	case floor.PlantTree:
		s.SetFill(paint.Solid(paint.Trunk))
		s.FillRect(-size/8, 0, size/4, size/2)
		s.SetFill(paint.Solid(paint.TreeCanopy))
		circle(s, 0, -size/4, size/2)
		s.Fill()
	case floor.PlantBush:
		s.SetFill(paint.Solid(paint.BushLeaves))
		for i := range 3 {
			circle(s, float64(i-1)*size/4, 0, size/3+r.rng.Float64()*size/6)
			s.Fill()
		}
	default:
		s.SetStroke(paint.Stem)
		s.SetLineWidth(2)
		for i := range 3 {
			x := float64(i-1) * size / 6
			line(s, x, size/3, x+r.rng.Float64()*10-5, -size/3)
		}
		s.SetFill(paint.Solid(paint.Leaf))
		for range leafCount {
			lx := r.rng.Float64()*size - size/2
			ly := r.rng.Float64()*size/2 - size/4
			circle(s, lx, ly, size/8)
			s.Fill()
		}
	}
}

// bar draws the counter with a highlight band along its top edge and, when
// seated, a row of stools below it.
func (r *Renderer) bar(s surface.Surface, b floor.Bar) {
	w := cmp.Or(b.Width, defaultBarWidth)
	h := cmp.Or(b.Height, defaultBarHeight)

	s.SetShadow(paint.ShadowBar)
	s.SetFill(paint.Solid(paint.BarColor(b.Material)))
	s.SetStroke(r.theme.Border)
	s.SetLineWidth(2)
	s.FillRect(-w/2, -h/2, w, h)
	s.StrokeRect(-w/2, -h/2, w, h)

	s.SetFill(r.theme.BarHighlight(h))
	s.FillRect(-w/2, -h/2, w, barHighlight)

	if !b.HasSeating || b.SeatCount <= 0 {
		return
	}
	spacing := w / float64(b.SeatCount+1)
	y := h/2 + stoolGap
	for i := range b.SeatCount {
		x := -w/2 + spacing*float64(i+1)
		s.SetFill(paint.Solid(r.theme.Muted))
		circle(s, x, y, stoolRadius)
		s.Fill()
		s.SetStroke(r.theme.Border)
		s.SetLineWidth(2)
		line(s, x, y, x, y+stoolLeg)
	}
}

func (r *Renderer) artwork(s surface.Surface, a floor.Artwork) {
	w := cmp.Or(a.Width, defaultArtWidth)
	h := cmp.Or(a.Height, defaultArtHeight)

	if style := paint.FrameStyle(a.FrameStyle); style != floor.FrameNone {
		s.SetFill(paint.Solid(paint.FrameColor(style)))
		s.FillRect(-w/2-artFrame, -h/2-artFrame, w+2*artFrame, h+2*artFrame)
	}

	s.SetFill(r.theme.ArtworkFill(a.ArtType, w, h))
	s.FillRect(-w/2, -h/2, w, h)
	s.SetStroke(r.theme.Border)
	s.SetLineWidth(1)
	s.StrokeRect(-w/2, -h/2, w, h)
}

// carpet draws the rug body, its pattern and a soft border.
func (r *Renderer) carpet(s surface.Surface, c floor.Carpet) {
	w := cmp.Or(c.Width, defaultCarpetWidth)
	h := cmp.Or(c.Height, defaultCarpetHeight)

	s.SetShadow(paint.ShadowCarpet)
	s.SetFill(paint.Solid(r.theme.CarpetColor(c.Color)))
	s.FillRect(-w/2, -h/2, w, h)

	s.SetStroke(r.theme.Border.WithAlpha(0.4))
	s.SetLineWidth(1)
	switch c.Pattern {
	case floor.PatternGeometric:
		for x := -w / 2; x < w/2; x += geometricSpacing {
			for y := -h / 2; y < h/2; y += geometricSpacing {
				s.StrokeRect(x, y, geometricTile, geometricTile)
			}
		}
	case floor.PatternFloral:
		for x := -w/2 + floralInset; x < w/2; x += floralSpacing {
			for y := -h/2 + floralInset; y < h/2; y += floralSpacing {
				circle(s, x, y, floralRadius)
				s.Stroke()
			}
		}
	}

	s.SetStroke(r.theme.Border.WithAlpha(0.5))
	s.SetLineWidth(2)
	s.StrokeRect(-w/2, -h/2, w, h)
}

// fireplace draws the body, the firebox, flames when lit, and the mantle.
func (r *Renderer) fireplace(s surface.Surface, f floor.Fireplace) {
	w := cmp.Or(f.Width, defaultFireplaceWidth)
	h := cmp.Or(f.Height, defaultFireplaceHeight)

	s.SetFill(paint.Solid(r.theme.Muted))
	s.SetStroke(r.theme.Border)
	s.SetLineWidth(2)
	s.FillRect(-w/2, -h/2, w, h)
	s.StrokeRect(-w/2, -h/2, w, h)

	ow, oh := w*0.7, h*0.6
	s.SetFill(paint.Solid(paint.FireOpening(f.IsLit)))
	s.FillRect(-ow/2, -oh/2, ow, oh)

	if f.IsLit {
		s.SetFill(paint.Flames(oh))
		for i := range flameCount {
			x := float64(i-1) * ow / 4
			s.BeginPath()
			s.MoveTo(x, oh/4)
			s.QuadraticTo(x-flameLean, 0, x, -oh/4)
			s.QuadraticTo(x+flameLean, 0, x, oh/4)
			s.Fill()
		}
	}

	s.SetFill(paint.Solid(r.theme.MutedForeground))
	s.FillRect(-w/2, -h/2, w, mantleDepth)
}
