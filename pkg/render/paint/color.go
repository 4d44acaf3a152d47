package paint

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSL colour with alpha. H is in degrees, S, L and A in [0, 1].
type Color struct {
	H, S, L, A float64
}

// HSL builds an opaque colour from CSS-style components: hue in degrees,
// saturation and lightness in percent.
func HSL(h, s, l float64) Color {
	return Color{H: h, S: s / 100, L: l / 100, A: 1}
}

// HSLA is HSL with an explicit alpha in [0, 1].
func HSLA(h, s, l, a float64) Color {
	return Color{H: h, S: s / 100, L: l / 100, A: a}
}

// White is opaque white.
var White = HSL(0, 0, 100)

// Transparent is fully transparent black.
var Transparent = Color{}

// ParseHex parses a "#rrggbb" or "#rgb" colour.
func ParseHex(s string) (Color, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	h, sat, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return Color{H: h, S: sat, L: l, A: 1}, nil
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lighten returns c with its lightness raised by d (in [0, 1]), clamped.
func (c Color) Lighten(d float64) Color {
	c.L = math.Min(1, math.Max(0, c.L+d))
	return c
}

// IsZero reports whether c is fully transparent.
func (c Color) IsZero() bool { return c.A <= 0 }

// Colorful converts c to a go-colorful colour, ignoring alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Hsl(c.H, c.S, c.L).Clamped()
}

// Hex returns the "#rrggbb" form of c, ignoring alpha.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// RGBA implements color.Color with alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Colorful()
	alpha := math.Min(1, math.Max(0, c.A))
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(cc.R*alpha*0xffff + 0.5)
	g = uint32(cc.G*alpha*0xffff + 0.5)
	b = uint32(cc.B*alpha*0xffff + 0.5)
	return
}

// String formats c as a CSS hsla() value.
func (c Color) String() string {
	return fmt.Sprintf("hsla(%g, %g%%, %g%%, %g)", round2(c.H), round2(c.S*100), round2(c.L*100), round2(c.A))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
