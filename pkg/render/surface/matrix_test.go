package surface

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMatrixCompose(t *testing.T) {
	// Scale then translate: device = zoom * (p + pan).
	m := Identity().Scale(2, 2).Translate(10, -5)
	x, y := m.Apply(1, 1)
	if !near(x, 22) || !near(y, -8) {
		t.Errorf("Apply = (%v,%v), want (22,-8)", x, y)
	}

	r := Identity().Translate(100, 0).Rotate(math.Pi / 2)
	x, y = r.Apply(10, 0)
	if !near(x, 100) || !near(y, 10) {
		t.Errorf("rotated Apply = (%v,%v), want (100,10)", x, y)
	}
	if !near(r.Angle(), math.Pi/2) {
		t.Errorf("Angle = %v", r.Angle())
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Identity().Scale(1.5, 1.5).Translate(-40, 25).Rotate(0.3)
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("matrix should be invertible")
	}
	for _, p := range [][2]float64{{0, 0}, {123.4, -56.7}, {1200, 800}} {
		dx, dy := m.Apply(p[0], p[1])
		x, y := inv.Apply(dx, dy)
		if !near(x, p[0]) || !near(y, p[1]) {
			t.Errorf("round trip %v -> (%v,%v)", p, x, y)
		}
	}
	id := m.Multiply(inv)
	if !near(id.A, 1) || !near(id.D, 1) || !near(id.E, 0) || !near(id.F, 0) {
		t.Errorf("m·inv = %+v, want identity", id)
	}
	if _, ok := Identity().Scale(0, 1).Invert(); ok {
		t.Error("singular matrix inverted")
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	m := Identity().Scale(3, 3).Rotate(1)
	if !near(m.ScaleFactor(), 3) {
		t.Errorf("ScaleFactor = %v, want 3", m.ScaleFactor())
	}
	if !Identity().IsIdentity() || m.IsIdentity() {
		t.Error("IsIdentity mismatch")
	}
}
