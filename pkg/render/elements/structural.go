package elements

import (
	"cmp"
	"math"

	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/surface"
)

const (
	defaultWallThickness = 8.0
	brickHeight          = 8.0
	brickWidth           = 16.0
	woodGrainLines       = 3

	defaultDoorWidth = 80.0
	doorDepth        = 20.0

	defaultWindowWidth  = 100.0
	defaultWindowHeight = 60.0
	windowFrame         = 4.0

	defaultColumnDiameter = 40.0
	columnRings           = 3
	columnRingStep        = 5.0

	defaultStairsWidth = 100.0
	defaultStepCount   = 8
	// stairsRun is the depth covered by all treads together.
	stairsRun = 80.0
	// stairTaper is how much each step shrinks per side relative to the one below.
	stairTaper = 2.0
)

// wall draws a thick segment from the anchor running along local +y for the
// distance to the wall end, with a brick or wood texture.
func (r *Renderer) wall(s surface.Surface, anchor floor.Point, w floor.Wall) {
	t := cmp.Or(w.Thickness, defaultWallThickness)
	length := anchor.Dist(floor.Point{X: w.EndX, Y: w.EndY})

	s.SetShadow(paint.ShadowWall)
	s.SetFill(paint.Solid(r.theme.MaterialColor(w.Material)))
	s.SetStroke(r.theme.Border)
	s.SetLineWidth(1)
	s.FillRect(-t/2, 0, t, length)
	s.StrokeRect(-t/2, 0, t, length)

	switch w.Material {
	case floor.MaterialBrick:
		s.SetStroke(r.theme.WallTexture())
		s.SetLineWidth(0.5)
		for y := 0.0; y < length; y += brickHeight {
			offset := 0.0
			if int(y/brickHeight)%2 == 1 {
				offset = brickWidth / 2
			}
			for x := offset; x < t; x += brickWidth {
				s.StrokeRect(-t/2+x, y, math.Min(brickWidth, t-x), brickHeight)
			}
		}
	case floor.MaterialWood:
		s.SetStroke(r.theme.WallTexture())
		s.SetLineWidth(0.5)
		for i := range woodGrainLines {
			x := -t/2 + float64(i)*t/woodGrainLines
			line(s, x, 0, x, length)
		}
	}
}

// door draws the frame, the leaf with its handle, and for hinged doors the
// dashed swing arc.
func (r *Renderer) door(s surface.Surface, d floor.Door) {
	w := cmp.Or(d.Width, defaultDoorWidth)

	s.SetFill(paint.Solid(r.theme.Muted))
	s.FillRect(-w/2, -doorDepth/2, w, doorDepth)

	s.SetFill(paint.Solid(r.theme.DoorPanel(d.DoorType)))
	s.FillRect(-w/2+2, -doorDepth/2+2, w-4, doorDepth-4)
	s.SetStroke(r.theme.Border)
	s.SetLineWidth(2)
	s.StrokeRect(-w/2+2, -doorDepth/2+2, w-4, doorDepth-4)

	handleX := -w / 3
	if d.OpenDirection == floor.OpenLeft {
		handleX = w / 3
	}
	s.SetFill(paint.Solid(r.theme.Primary))
	s.FillRect(handleX-2, -2, 4, 4)

	if d.DoorType != floor.DoorSliding {
		hinge := w / 2
		if d.OpenDirection == floor.OpenLeft {
			hinge = -w / 2
		}
		s.SetStroke(r.theme.SwingArc())
		s.SetLineWidth(1)
		s.SetDash(2, 2)
		s.BeginPath()
		s.Arc(hinge, 0, w, 0, math.Pi/2)
		s.Stroke()
		s.SetDash()
	}
}

func (r *Renderer) window(s surface.Surface, win floor.Window) {
	w := cmp.Or(win.Width, defaultWindowWidth)
	h := cmp.Or(win.Height, defaultWindowHeight)

	if win.Framed() {
		s.SetFill(paint.Solid(r.theme.Muted))
		s.FillRect(-w/2-windowFrame, -h/2-windowFrame, w+2*windowFrame, h+2*windowFrame)
	}

	s.SetFill(r.theme.WindowGlass(w, h))
	s.FillRect(-w/2, -h/2, w, h)

	s.SetStroke(r.theme.Border)
	s.SetLineWidth(1)
	s.StrokeRect(-w/2, -h/2, w, h)
	line(s, 0, -h/2, 0, h/2)
	line(s, -w/2, 0, w/2, 0)
}

// column draws a round or square shaft; decorative columns add concentric rings.
func (r *Renderer) column(s surface.Surface, c floor.Column) {
	d := cmp.Or(c.Diameter, defaultColumnDiameter)
	radius := d / 2

	s.SetShadow(paint.ShadowColumn)
	s.SetFill(paint.Solid(r.theme.MaterialColor(c.Material)))
	s.SetStroke(r.theme.Border)
	s.SetLineWidth(2)

	if c.ColumnType == floor.ColumnRound {
		circle(s, 0, 0, radius)
		s.Fill()
		s.Stroke()
	} else {
		s.FillRect(-radius, -radius, d, d)
		s.StrokeRect(-radius, -radius, d, d)
	}

	if c.ColumnType == floor.ColumnDecorative {
		s.SetStroke(r.theme.ColumnRing())
		s.SetLineWidth(1)
		for i := range columnRings {
			circle(s, 0, 0, radius-float64(i)*columnRingStep)
			s.Stroke()
		}
	}
}

// stairs draws the treads from the bottom step up, each one narrower than the
// last, with optional side railings and a direction arrow.
func (r *Renderer) stairs(s surface.Surface, st floor.Stairs) {
	w := cmp.Or(st.Width, defaultStairsWidth)
	n := cmp.Or(st.StepCount, defaultStepCount)
	stepHeight := stairsRun / float64(n)

	s.SetShadow(paint.ShadowStairs)
	s.SetStroke(r.theme.Border)
	s.SetLineWidth(1)
	for i := range n {
		y := float64(i) * stepHeight
		stepWidth := max(0, w-2*float64(i)*stairTaper)
		s.SetFill(paint.Solid(r.theme.StepTone(i)))
		s.FillRect(-stepWidth/2, y, stepWidth, stepHeight)
		s.StrokeRect(-stepWidth/2, y, stepWidth, stepHeight)
	}

	if st.HasRailings {
		h := float64(n) * stepHeight
		s.SetStroke(r.theme.Border)
		s.SetLineWidth(2)
		s.BeginPath()
		s.MoveTo(-w/2, 0)
		s.LineTo(-w/2, -h)
		s.MoveTo(w/2, 0)
		s.LineTo(w/2, -h)
		s.MoveTo(-w/2, -h)
		s.LineTo(w/2, -h)
		s.Stroke()
	}

	arrow := "↑"
	if st.Direction == floor.StairsDown {
		arrow = "↓"
	}
	s.SetShadow(paint.Shadow{})
	s.SetFill(paint.Solid(r.theme.Primary))
	s.SetFontSize(16)
	s.FillText(arrow, 0, -10)
}
