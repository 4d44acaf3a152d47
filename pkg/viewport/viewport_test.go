package viewport

import (
	"math"
	"testing"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestZoomClamp(t *testing.T) {
	v := New(config.Default())
	tests := []struct {
		delta float64
		want  float64
	}{
		{0.5, 1.5},
		{10, 3},
		{-0.1, 2.9},
		{-100, 0.5},
		{0.25, 0.75},
	}
	for _, tt := range tests {
		if got := v.ZoomBy(tt.delta); !near(got, tt.want) {
			t.Errorf("ZoomBy(%v) = %v, want %v", tt.delta, got, tt.want)
		}
	}
	if got := v.ZoomBy(math.NaN()); !near(got, 0.75) {
		t.Errorf("NaN delta changed zoom to %v", got)
	}
}

func TestZoomSteps(t *testing.T) {
	v := New(config.Default())
	v.ZoomIn()
	v.ZoomIn()
	if v.Percent() != 120 {
		t.Errorf("Percent = %d, want 120", v.Percent())
	}
	for range 40 {
		v.ZoomOut()
	}
	if v.Zoom() != 0.5 {
		t.Errorf("Zoom = %v, want 0.5", v.Zoom())
	}
}

func TestReset(t *testing.T) {
	v := New(config.Default())
	v.ZoomBy(1.2)
	v.PanBy(30, -40)
	v.Reset()
	if v.Zoom() != 1 || v.Pan() != (floor.Point{}) {
		t.Errorf("after Reset: zoom=%v pan=%v", v.Zoom(), v.Pan())
	}
}

func TestRoundTrip(t *testing.T) {
	v := New(config.Default())
	v.SetOrigin(floor.Point{X: 15, Y: 80})
	points := []floor.Point{{X: 0, Y: 0}, {X: 600, Y: 400}, {X: -25.5, Y: 1234.75}}
	for _, zoom := range []float64{0.5, 1, 1.7, 3} {
		v.Restore(View{Zoom: zoom, Pan: floor.Point{X: 33, Y: -12}})
		for _, p := range points {
			got := v.WorldFromScreen(v.ScreenFromWorld(p))
			if !near(got.X, p.X) || !near(got.Y, p.Y) {
				t.Errorf("zoom %v: round trip %v -> %v", zoom, p, got)
			}
		}
	}
}

func TestWorldFromScreen(t *testing.T) {
	v := New(config.Default())
	v.Restore(View{Zoom: 2, Pan: floor.Point{X: 10, Y: 5}})
	got := v.WorldFromScreen(floor.Point{X: 220, Y: 110})
	if !near(got.X, 100) || !near(got.Y, 50) {
		t.Errorf("WorldFromScreen = %v, want (100,50)", got)
	}
}

func TestMatrixMatchesScreenFromWorld(t *testing.T) {
	v := New(config.Default())
	v.Restore(View{Zoom: 1.5, Pan: floor.Point{X: -20, Y: 40}})
	m := v.View().Matrix()
	p := floor.Point{X: 300, Y: 300}
	x, y := m.Apply(p.X, p.Y)
	want := v.ScreenFromWorld(p)
	if !near(x, want.X) || !near(y, want.Y) {
		t.Errorf("Matrix.Apply = (%v,%v), want %v", x, y, want)
	}
}

func TestRestoreClamps(t *testing.T) {
	v := New(config.Default())
	v.Restore(View{Zoom: 9})
	if v.Zoom() != 3 {
		t.Errorf("Zoom = %v, want 3", v.Zoom())
	}
}
