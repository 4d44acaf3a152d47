package surface

import "math"

// Matrix is a 2D affine transform mapping (x, y) to
// (A·x + C·y + E, B·x + D·y + F).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Translate returns m followed (in user space) by a translation.
func (m Matrix) Translate(x, y float64) Matrix {
	m.E += m.A*x + m.C*y
	m.F += m.B*x + m.D*y
	return m
}

// Scale returns m with user space scaled by (sx, sy).
func (m Matrix) Scale(sx, sy float64) Matrix {
	m.A *= sx
	m.B *= sx
	m.C *= sy
	m.D *= sy
	return m
}

// Rotate returns m with user space rotated by theta radians.
func (m Matrix) Rotate(theta float64) Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix{
		A: m.A*c + m.C*s,
		B: m.B*c + m.D*s,
		C: m.C*c - m.A*s,
		D: m.D*c - m.B*s,
		E: m.E,
		F: m.F,
	}
}

// Multiply returns the transform applying n first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply maps a point through m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 { return m.A*m.D - m.B*m.C }

// Invert returns the inverse transform, or false if m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Det()
	if det == 0 {
		return Matrix{}, false
	}
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}

// ScaleFactor returns the uniform scale of m.
func (m Matrix) ScaleFactor() float64 { return math.Sqrt(math.Abs(m.Det())) }

// Angle returns the rotation of m in radians.
func (m Matrix) Angle() float64 { return math.Atan2(m.B, m.A) }

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool { return m == Identity() }
