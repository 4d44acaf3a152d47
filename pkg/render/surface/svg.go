package surface

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"

	"github.com/matzehuels/floorplan/pkg/fonts"
	"github.com/matzehuels/floorplan/pkg/render/paint"
)

// SVG is a Surface producing a standalone SVG document.
type SVG struct {
	canvas
	width, height float64
	body          bytes.Buffer
	defs          bytes.Buffer
	nextID        int
	filters       map[paint.Shadow]string
	title         string
}

// SVGOption configures an SVG surface.
type SVGOption func(*SVG)

// WithTitle adds a <title> to the document.
func WithTitle(title string) SVGOption {
	return func(s *SVG) { s.title = title }
}

// NewSVG returns an empty SVG surface of the given pixel size.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	s := &SVG{canvas: newCanvas(), width: width, height: height, filters: map[paint.Shadow]string{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`,
		num(s.width), num(s.height), num(s.width), num(s.height))
	buf.WriteByte('\n')
	if s.title != "" {
		fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(s.title))
	}
	if s.defs.Len() > 0 {
		buf.WriteString("<defs>\n")
		buf.Write(s.defs.Bytes())
		buf.WriteString("</defs>\n")
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *SVG) Clear() {
	s.body.Reset()
	s.defs.Reset()
	s.nextID = 0
	clear(s.filters)
}

func (s *SVG) FillRect(x, y, w, h float64)   { s.fill(s.rectPath(x, y, w, h)) }
func (s *SVG) StrokeRect(x, y, w, h float64) { s.stroke(s.rectPath(x, y, w, h)) }
func (s *SVG) Fill()                         { s.fill(s.path) }
func (s *SVG) Stroke()                       { s.stroke(s.path) }

func (s *SVG) fill(path []Segment) {
	if len(path) == 0 {
		return
	}
	fmt.Fprintf(&s.body, `<path d="%s" %s%s/>`+"\n", pathData(path), s.fillAttrs(s.st.fill), s.filterAttr())
}

func (s *SVG) stroke(path []Segment) {
	if len(path) == 0 {
		return
	}
	w, dash := s.deviceLine()
	var b bytes.Buffer
	fmt.Fprintf(&b, `fill="none" stroke="%s"`, s.st.stroke.Hex())
	if s.st.stroke.A < 1 {
		fmt.Fprintf(&b, ` stroke-opacity="%s"`, num(s.st.stroke.A))
	}
	fmt.Fprintf(&b, ` stroke-width="%s"`, num(w))
	if len(dash) > 0 {
		b.WriteString(` stroke-dasharray="`)
		for i, d := range dash {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(num(d))
		}
		b.WriteByte('"')
	}
	fmt.Fprintf(&s.body, `<path d="%s" %s%s/>`+"\n", pathData(path), b.String(), s.filterAttr())
}

func (s *SVG) FillText(text string, x, y float64) {
	dx, dy := s.st.m.Apply(x, y)
	size := s.st.fontSize * s.st.m.ScaleFactor()
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" font-family="%s" font-size="%s" text-anchor="middle" dominant-baseline="central" %s`,
		num(dx), num(dy), html.EscapeString(fonts.FontFamily), num(size), s.fillAttrs(paint.Solid(s.st.fill.Representative())))
	if deg := s.st.m.Angle() * 180 / math.Pi; math.Abs(deg) > 1e-9 {
		fmt.Fprintf(&s.body, ` transform="rotate(%s %s %s)"`, num(deg), num(dx), num(dy))
	}
	fmt.Fprintf(&s.body, `%s>%s</text>`+"\n", s.filterAttr(), html.EscapeString(text))
}

func (s *SVG) fillAttrs(p paint.Paint) string {
	if p.Gradient != nil {
		return fmt.Sprintf(`fill="url(#%s)"`, s.gradient(s.devicePaint(p).Gradient))
	}
	if p.Color.A < 1 {
		return fmt.Sprintf(`fill="%s" fill-opacity="%s"`, p.Color.Hex(), num(p.Color.A))
	}
	return fmt.Sprintf(`fill="%s"`, p.Color.Hex())
}

func (s *SVG) gradient(g *paint.Gradient) string {
	s.nextID++
	id := "g" + strconv.Itoa(s.nextID)
	if g.Kind == paint.Radial {
		fmt.Fprintf(&s.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" fx="%s" fy="%s" fr="%s" cx="%s" cy="%s" r="%s">`,
			id, num(g.X0), num(g.Y0), num(g.R0), num(g.X1), num(g.Y1), num(g.R1))
	} else {
		fmt.Fprintf(&s.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			id, num(g.X0), num(g.Y0), num(g.X1), num(g.Y1))
	}
	for _, st := range g.Stops {
		fmt.Fprintf(&s.defs, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`, num(st.Offset), st.Color.Hex(), num(st.Color.A))
	}
	if g.Kind == paint.Radial {
		s.defs.WriteString("</radialGradient>\n")
	} else {
		s.defs.WriteString("</linearGradient>\n")
	}
	return id
}

func (s *SVG) filterAttr() string {
	sh := s.st.shadow
	if sh.IsZero() {
		return ""
	}
	id, ok := s.filters[sh]
	if !ok {
		s.nextID++
		id = "sh" + strconv.Itoa(s.nextID)
		s.filters[sh] = id
		fmt.Fprintf(&s.defs, `<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+
			`<feDropShadow dx="%s" dy="%s" stdDeviation="%s" flood-color="%s" flood-opacity="%s"/></filter>`+"\n",
			id, num(sh.OffsetX), num(sh.OffsetY), num(sh.Blur/2), sh.Color.Hex(), num(sh.Color.A))
	}
	return fmt.Sprintf(` filter="url(#%s)"`, id)
}

// pathData renders device-space segments as SVG path data. Arcs are split into
// pieces of at most a half turn so full circles survive.
func pathData(path []Segment) string {
	var b bytes.Buffer
	for _, seg := range path {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch seg.Op {
		case OpMove:
			fmt.Fprintf(&b, "M%s %s", num(seg.X), num(seg.Y))
		case OpLine:
			fmt.Fprintf(&b, "L%s %s", num(seg.X), num(seg.Y))
		case OpQuad:
			fmt.Fprintf(&b, "Q%s %s %s %s", num(seg.CX), num(seg.CY), num(seg.X), num(seg.Y))
		case OpArc:
			pieces := int(math.Ceil(seg.Sweep / math.Pi))
			if pieces < 1 {
				pieces = 1
			}
			step := seg.Sweep / float64(pieces)
			for i := 1; i <= pieces; i++ {
				a := seg.Start + step*float64(i)
				x, y := seg.CX+seg.R*math.Cos(a), seg.CY+seg.R*math.Sin(a)
				if i > 1 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "A%s %s 0 0 1 %s %s", num(seg.R), num(seg.R), num(x), num(y))
			}
		case OpClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // normalise -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ Surface = (*SVG)(nil)
