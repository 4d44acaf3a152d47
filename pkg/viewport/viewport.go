// Package viewport holds the zoom and pan of the floor plan canvas and maps
// between screen and world coordinates.
//
// The forward transform used for drawing scales first and then translates:
//
//	screen = origin + (world + pan) × zoom
//
// so pan is measured in world units. [Viewport.WorldFromScreen] is its exact
// inverse. Zoom always stays within the configured bounds.
package viewport

import (
	"math"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/render/surface"
)

// View is a snapshot of the viewport state.
type View struct {
	Zoom float64     `json:"zoom"`
	Pan  floor.Point `json:"pan"`
}

// Matrix returns the world-to-surface transform for v.
func (v View) Matrix() surface.Matrix {
	return surface.Identity().Scale(v.Zoom, v.Zoom).Translate(v.Pan.X, v.Pan.Y)
}

// Viewport is the zoom and pan state of one canvas. The zero value is not
// usable; call New.
type Viewport struct {
	minZoom, maxZoom float64
	step             float64
	zoom             float64
	pan              floor.Point
	origin           floor.Point
}

// New returns a viewport at zoom 1 with no pan.
func New(cfg config.Canvas) *Viewport {
	return &Viewport{
		minZoom: cfg.MinZoom,
		maxZoom: cfg.MaxZoom,
		step:    cfg.ZoomStep,
		zoom:    1,
	}
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// Pan returns the current pan offset in world units.
func (v *Viewport) Pan() floor.Point { return v.pan }

// View returns the current state.
func (v *Viewport) View() View { return View{Zoom: v.zoom, Pan: v.pan} }

// Percent returns the zoom as a rounded percentage for display.
func (v *Viewport) Percent() int { return int(math.Round(v.zoom * 100)) }

// SetOrigin records where the drawing surface sits on screen. Screen
// coordinates passed to the mapping functions are relative to the same frame
// as origin.
func (v *Viewport) SetOrigin(p floor.Point) { v.origin = p }

// ZoomBy adds delta to the zoom, clamped to the configured range, and returns
// the new zoom.
func (v *Viewport) ZoomBy(delta float64) float64 {
	v.zoom = v.clamp(v.zoom + delta)
	return v.zoom
}

// ZoomIn zooms in by one step.
func (v *Viewport) ZoomIn() float64 { return v.ZoomBy(v.step) }

// ZoomOut zooms out by one step.
func (v *Viewport) ZoomOut() float64 { return v.ZoomBy(-v.step) }

// PanBy shifts the view by (dx, dy) world units.
func (v *Viewport) PanBy(dx, dy float64) {
	v.pan.X += dx
	v.pan.Y += dy
}

// Reset returns to zoom 1 and no pan.
func (v *Viewport) Reset() {
	v.zoom = 1
	v.pan = floor.Point{}
}

// Restore sets the state from a snapshot, clamping the zoom.
func (v *Viewport) Restore(view View) {
	v.zoom = v.clamp(view.Zoom)
	v.pan = view.Pan
}

func (v *Viewport) clamp(z float64) float64 {
	if math.IsNaN(z) {
		return v.zoom
	}
	return math.Min(v.maxZoom, math.Max(v.minZoom, z))
}

// WorldFromScreen maps a screen point to world coordinates:
// ((p - origin) - pan × zoom) / zoom.
func (v *Viewport) WorldFromScreen(p floor.Point) floor.Point {
	rel := p.Sub(v.origin)
	return floor.Point{
		X: (rel.X - v.pan.X*v.zoom) / v.zoom,
		Y: (rel.Y - v.pan.Y*v.zoom) / v.zoom,
	}
}

// ScreenFromWorld maps a world point to screen coordinates.
func (v *Viewport) ScreenFromWorld(p floor.Point) floor.Point {
	return floor.Point{
		X: (p.X+v.pan.X)*v.zoom + v.origin.X,
		Y: (p.Y+v.pan.Y)*v.zoom + v.origin.Y,
	}
}
