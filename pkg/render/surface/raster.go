package surface

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/floorplan/pkg/fonts"
	"github.com/matzehuels/floorplan/pkg/render/paint"
)

// Raster is a Surface painting into an RGBA image.
//
// The gg context always runs with an identity transform: paths arrive in
// device space already, and gradients are mapped to device space before
// filling. Shadows are drawn as an unblurred offset copy.
type Raster struct {
	canvas
	dc  *gg.Context
	err error
}

// RasterOption configures a Raster surface.
type RasterOption func(*Raster)

// WithPixelRatio scales all drawing by ratio, producing a larger image for
// high-density displays.
func WithPixelRatio(ratio float64) RasterOption {
	return func(r *Raster) {
		if ratio > 0 {
			r.st.m = r.st.m.Scale(ratio, ratio)
		}
	}
}

// NewRaster returns a transparent raster surface. The image is width×height
// multiplied by the pixel ratio.
func NewRaster(width, height float64, opts ...RasterOption) *Raster {
	r := &Raster{canvas: newCanvas()}
	for _, opt := range opts {
		opt(r)
	}
	s := r.st.m.ScaleFactor()
	r.dc = gg.NewContext(int(width*s+0.5), int(height*s+0.5))
	return r
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// Err returns the first error met while drawing, such as a font that failed
// to load.
func (r *Raster) Err() error { return r.err }

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

// PNG returns the image encoded as PNG.
func (r *Raster) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Raster) Clear() {
	r.dc.SetColor(color.Transparent)
	r.dc.Clear()
}

func (r *Raster) FillRect(x, y, w, h float64)   { r.fill(r.rectPath(x, y, w, h)) }
func (r *Raster) StrokeRect(x, y, w, h float64) { r.stroke(r.rectPath(x, y, w, h)) }
func (r *Raster) Fill()                         { r.fill(r.path) }
func (r *Raster) Stroke()                       { r.stroke(r.path) }

func (r *Raster) fill(path []Segment) {
	if len(path) == 0 {
		return
	}
	if sh := r.st.shadow; !sh.IsZero() {
		r.trace(path, sh.OffsetX, sh.OffsetY)
		r.dc.SetFillStyle(gg.NewSolidPattern(sh.Color))
		r.dc.Fill()
	}
	r.trace(path, 0, 0)
	r.dc.SetFillStyle(pattern(r.devicePaint(r.st.fill)))
	r.dc.Fill()
}

func (r *Raster) stroke(path []Segment) {
	if len(path) == 0 {
		return
	}
	w, dash := r.deviceLine()
	r.dc.SetLineWidth(w)
	r.dc.SetDash(dash...)
	if sh := r.st.shadow; !sh.IsZero() {
		r.trace(path, sh.OffsetX, sh.OffsetY)
		r.dc.SetStrokeStyle(gg.NewSolidPattern(sh.Color))
		r.dc.Stroke()
	}
	r.trace(path, 0, 0)
	r.dc.SetStrokeStyle(gg.NewSolidPattern(r.st.stroke))
	r.dc.Stroke()
}

func (r *Raster) FillText(text string, x, y float64) {
	face, err := fonts.Face(r.st.fontSize * r.st.m.ScaleFactor())
	if err != nil {
		if r.err == nil {
			r.err = err
		}
		return
	}
	dx, dy := r.st.m.Apply(x, y)
	r.dc.SetFontFace(face)
	r.dc.SetColor(r.st.fill.Representative())
	r.dc.DrawStringAnchored(text, dx, dy, 0.5, 0.5)
}

// trace replays device-space segments into the gg path, shifted by (ox, oy).
func (r *Raster) trace(path []Segment, ox, oy float64) {
	dc := r.dc
	dc.ClearPath()
	for _, s := range path {
		switch s.Op {
		case OpMove:
			dc.MoveTo(s.X+ox, s.Y+oy)
		case OpLine:
			dc.LineTo(s.X+ox, s.Y+oy)
		case OpQuad:
			dc.QuadraticTo(s.CX+ox, s.CY+oy, s.X+ox, s.Y+oy)
		case OpArc:
			dc.DrawArc(s.CX+ox, s.CY+oy, s.R, s.Start, s.Start+s.Sweep)
		case OpClose:
			dc.ClosePath()
		}
	}
}

func pattern(p paint.Paint) gg.Pattern {
	g := p.Gradient
	if g == nil {
		return gg.NewSolidPattern(p.Color)
	}
	var grad gg.Gradient
	if g.Kind == paint.Radial {
		grad = gg.NewRadialGradient(g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	} else {
		grad = gg.NewLinearGradient(g.X0, g.Y0, g.X1, g.Y1)
	}
	for _, st := range g.Stops {
		grad.AddColorStop(st.Offset, st.Color)
	}
	return grad
}

var _ Surface = (*Raster)(nil)
