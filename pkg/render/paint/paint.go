package paint

// GradientKind selects linear or radial interpolation.
type GradientKind int

const (
	Linear GradientKind = iota
	Radial
)

// Stop is a colour at an offset in [0, 1] along a gradient.
type Stop struct {
	Offset float64
	Color  Color
}

// Gradient is defined in the user space of the surface it is filled on.
// Linear gradients run from (X0, Y0) to (X1, Y1); radial gradients run from
// the circle (X0, Y0, R0) to the circle (X1, Y1, R1).
type Gradient struct {
	Kind       GradientKind
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []Stop
}

// Paint is either a solid colour or a gradient.
type Paint struct {
	Color    Color
	Gradient *Gradient
}

// Solid returns a solid-colour paint.
func Solid(c Color) Paint { return Paint{Color: c} }

// LinearGradient returns a paint interpolating from (x0, y0) to (x1, y1).
func LinearGradient(x0, y0, x1, y1 float64, stops ...Stop) Paint {
	return Paint{Gradient: &Gradient{Kind: Linear, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}}
}

// RadialGradient returns a paint interpolating between two circles.
func RadialGradient(x0, y0, r0, x1, y1, r1 float64, stops ...Stop) Paint {
	return Paint{Gradient: &Gradient{Kind: Radial, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1, Stops: stops}}
}

// IsGradient reports whether p is a gradient.
func (p Paint) IsGradient() bool { return p.Gradient != nil }

// Representative returns a single colour standing in for p: the colour itself,
// or the first stop of a gradient. Backends that cannot paint gradients (text,
// shadows) use it.
func (p Paint) Representative() Color {
	if p.Gradient != nil && len(p.Gradient.Stops) > 0 {
		return p.Gradient.Stops[0].Color
	}
	return p.Color
}

// Shadow is a drop shadow applied to subsequent fills and strokes. The zero
// Shadow draws nothing.
type Shadow struct {
	Color            Color
	Blur             float64
	OffsetX, OffsetY float64
}

// IsZero reports whether the shadow is disabled.
func (s Shadow) IsZero() bool { return s.Color.IsZero() }
