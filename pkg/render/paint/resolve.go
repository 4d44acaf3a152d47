package paint

import (
	"math"

	"github.com/matzehuels/floorplan/pkg/floor"
)

// Shared tones used across element renderers.
var (
	glassTint = HSLA(200, 100, 85, 0.7)
	swingArc  = HSLA(217, 91, 50, 0.3)
)

// Shadow presets. The table shadows are tinted with the primary and accent hues.
var (
	ShadowWall     = Shadow{Color: HSLA(220, 30, 20, 0.3), Blur: 4, OffsetY: 2}
	ShadowBar      = Shadow{Color: HSLA(220, 30, 20, 0.4), Blur: 6, OffsetY: 3}
	ShadowColumn   = Shadow{Color: HSLA(220, 30, 20, 0.4), Blur: 6, OffsetX: 2, OffsetY: 3}
	ShadowStairs   = Shadow{Color: HSLA(220, 30, 20, 0.3), Blur: 4}
	ShadowCarpet   = Shadow{Color: HSLA(220, 30, 20, 0.2), Blur: 3, OffsetY: 1}
	ShadowTable    = Shadow{Color: HSLA(217, 91, 30, 0.2), Blur: 6, OffsetY: 2}
	ShadowTableSel = Shadow{Color: HSLA(142, 71, 25, 0.45), Blur: 14, OffsetY: 4}
)

// MaterialColor resolves the wall and column material palette. Marble, steel
// and unset materials use the muted tone.
func (t Theme) MaterialColor(m floor.Material) Color {
	switch m {
	case floor.MaterialBrick:
		return HSL(15, 45, 65)
	case floor.MaterialWood:
		return HSL(30, 40, 55)
	case floor.MaterialGlass:
		return HSLA(200, 100, 85, 0.6)
	case floor.MaterialConcrete:
		return HSL(0, 0, 75)
	}
	return t.Muted
}

// WallTexture is the translucent border tone used for brick and wood lines.
func (t Theme) WallTexture() Color { return t.Border.WithAlpha(0.3) }

// DoorPanel resolves the door leaf colour.
func (t Theme) DoorPanel(d floor.DoorType) Color {
	switch d {
	case floor.DoorGlass:
		return glassTint
	}
	return t.Card
}

// SwingArc is the dashed arc showing a door's opening path.
func (t Theme) SwingArc() Color { return swingArc }

// WindowGlass is the diagonal glass gradient of a w×h window centred on the origin.
func (t Theme) WindowGlass(w, h float64) Paint {
	return LinearGradient(-w/2, -h/2, w/2, h/2,
		Stop{0, HSLA(200, 100, 85, 0.7)},
		Stop{0.5, HSLA(200, 100, 95, 0.4)},
		Stop{1, HSLA(200, 100, 75, 0.6)},
	)
}

// PlantSize resolves the nominal plant size in world units.
func PlantSize(s floor.PlantSize) float64 {
	switch s {
	case floor.PlantSmall:
		return 20
	case floor.PlantLarge:
		return 50
	}
	return 35
}

// PotColor resolves the pot colour; unset styles are classic.
func PotColor(s floor.PotStyle) Color {
	switch s {
	case floor.PotCeramic:
		return HSL(25, 60, 85)
	case floor.PotWicker:
		return HSL(35, 45, 65)
	case floor.PotModern:
		return HSL(0, 0, 60)
	}
	return HSL(20, 30, 70)
}

// Foliage tones.
var (
	Trunk      = HSL(30, 40, 40)
	TreeCanopy = HSL(120, 60, 35)
	BushLeaves = HSL(120, 50, 40)
	Stem       = HSL(120, 60, 30)
	Leaf       = HSL(120, 60, 40)
)

// BarColor resolves the bar counter material; unset materials are wood.
func BarColor(m floor.BarMaterial) Color {
	switch m {
	case floor.BarMarble:
		return HSL(0, 0, 90)
	case floor.BarGranite:
		return HSL(0, 0, 50)
	case floor.BarSteel:
		return HSL(210, 15, 70)
	}
	return HSL(30, 40, 50)
}

// BarHighlight is the vertical highlight gradient across the top 10 units of a
// bar of height h.
func (t Theme) BarHighlight(h float64) Paint {
	return LinearGradient(0, -h/2, 0, h/2,
		Stop{0, t.Primary.WithAlpha(0.2)},
		Stop{1, t.Primary.WithAlpha(0)},
	)
}

// ColumnRing strokes the decorative rings of a column.
func (t Theme) ColumnRing() Color { return t.Primary.WithAlpha(0.3) }

// StepTone alternates the tread colour of stairs.
func (t Theme) StepTone(i int) Color {
	if i%2 == 0 {
		return t.Muted
	}
	return t.MutedForeground
}

// FrameStyle returns the effective frame style; an unset style is modern.
func FrameStyle(s floor.FrameStyle) floor.FrameStyle {
	if s == "" {
		return floor.FrameModern
	}
	return s
}

// FrameColor resolves a picture frame colour.
func FrameColor(s floor.FrameStyle) Color {
	switch FrameStyle(s) {
	case floor.FrameClassic:
		return HSL(45, 60, 40)
	case floor.FrameRustic:
		return HSL(30, 30, 35)
	case floor.FrameModern:
		return HSL(0, 0, 30)
	}
	return HSL(0, 0, 60)
}

// ArtworkFill resolves the content of an artwork of size w×h: a mirror
// gradient, the accent tone for paintings, or the muted tone.
func (t Theme) ArtworkFill(a floor.ArtworkType, w, h float64) Paint {
	switch a {
	case floor.ArtMirror:
		return LinearGradient(-w/2, -h/2, w/2, h/2,
			Stop{0, HSLA(200, 50, 90, 0.8)},
			Stop{1, HSLA(200, 50, 70, 0.6)},
		)
	case floor.ArtPainting:
		return Solid(t.Accent)
	}
	return Solid(t.Muted)
}

// CarpetColor parses a carpet's hex colour, falling back to the accent tone.
func (t Theme) CarpetColor(hex string) Color {
	if hex == "" {
		return t.Accent
	}
	c, err := ParseHex(hex)
	if err != nil {
		return t.Accent
	}
	return c
}

// FireOpening resolves the firebox colour.
func FireOpening(lit bool) Color {
	if lit {
		return HSL(20, 80, 40)
	}
	return HSL(0, 0, 20)
}

// Flames is the radial fire gradient for a firebox of height h.
func Flames(h float64) Paint {
	return RadialGradient(0, h/4, 0, 0, 0, h/2,
		Stop{0, HSL(60, 100, 70)},
		Stop{0.5, HSL(20, 100, 60)},
		Stop{1, HSL(0, 100, 50)},
	)
}

// TableFill is the radial body gradient of a table with the given size.
// The gradient centre is offset towards the top left to suggest a light source.
func (t Theme) TableFill(size float64, selected bool) Paint {
	base := t.Primary
	if selected {
		base = t.Accent
	}
	off := size / 6
	return RadialGradient(-off, -off, 0, 0, 0, size/2*math.Sqrt2,
		Stop{0, base.Lighten(0.25)},
		Stop{1, base.Lighten(0.05)},
	)
}

// TableStroke returns the outline colour and width of a table.
func (t Theme) TableStroke(selected bool) (Color, float64) {
	if selected {
		return t.Accent.Lighten(-0.15), 3
	}
	return t.Primary.Lighten(-0.1), 1.5
}

// TableShadow returns the drop shadow of a table.
func TableShadow(selected bool) Shadow {
	if selected {
		return ShadowTableSel
	}
	return ShadowTable
}

// TableHighlight is the translucent white used for the highlight arc or stripe.
func TableHighlight() Color { return White.WithAlpha(0.35) }

// LabelPlate is the semi-opaque backing behind the capacity label.
func LabelPlate() Color { return HSLA(0, 0, 0, 0.25) }
