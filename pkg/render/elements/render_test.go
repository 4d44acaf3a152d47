package elements

import (
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/surface"
)

func newRenderer(seed uint64) *Renderer {
	return New(paint.DefaultTheme(), WithRand(rand.New(rand.NewPCG(seed, seed))))
}

func render(t *testing.T, e floor.Element) *surface.Recorder {
	t.Helper()
	rec := surface.NewRecorder()
	newRenderer(1).Render(rec, e)
	if rec.Depth() != 0 {
		t.Fatalf("unbalanced Save/Restore: depth %d", rec.Depth())
	}
	return rec
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestRenderSkipsUnknown(t *testing.T) {
	rec := render(t, floor.Element{ID: "x", Props: floor.Unknown{Kind: "sofa"}})
	if len(rec.Ops) != 0 {
		t.Errorf("unknown element drew %d ops", len(rec.Ops))
	}
	rec = render(t, floor.Element{ID: "y"})
	if len(rec.Ops) != 0 {
		t.Errorf("element without props drew %d ops", len(rec.Ops))
	}
	// A nil surface must not panic.
	newRenderer(1).Render(nil, floor.Element{Props: floor.Door{}})
}

func TestEveryTypeDraws(t *testing.T) {
	for _, tpl := range floor.Templates() {
		t.Run(string(tpl.Props.Type()), func(t *testing.T) {
			rec := render(t, tpl.Instantiate(300, 300))
			if len(rec.Filter(surface.OpKindFill)) == 0 {
				t.Error("nothing filled")
			}
		})
	}
}

func TestWallBrickTexture(t *testing.T) {
	rec := render(t, floor.Element{X: 0, Y: 0, Props: floor.Wall{EndX: 0, EndY: 32, Material: floor.MaterialBrick}})
	if n := len(rec.Filter(surface.OpKindFill)); n != 1 {
		t.Errorf("fills = %d, want 1", n)
	}
	// Body outline plus one brick on each even row (rows at y=0 and y=16).
	if n := len(rec.Filter(surface.OpKindStroke)); n != 3 {
		t.Errorf("strokes = %d, want 3", n)
	}
	body := rec.Filter(surface.OpKindFill)[0]
	x0, y0, x1, y1 := body.Bounds()
	if x0 != -4 || x1 != 4 || y0 != 0 || y1 != 32 {
		t.Errorf("wall body = (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}
	if body.Shadow.IsZero() {
		t.Error("wall should cast a shadow")
	}
}

func TestWallRotation(t *testing.T) {
	rec := render(t, floor.Element{X: 100, Y: 100, Rotation: 90, Props: floor.Wall{EndX: 100, EndY: 150}})
	x0, y0, x1, y1 := rec.Filter(surface.OpKindFill)[0].Bounds()
	// Rotating local +y by 90° clockwise points it along -x.
	if !near(x0, 50) || !near(x1, 100) || !near(y0, 96) || !near(y1, 104) {
		t.Errorf("rotated wall = (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}
}

func TestDoorHandleAndSwing(t *testing.T) {
	tests := []struct {
		name      string
		door      floor.Door
		handleX   float64
		wantSwing bool
	}{
		{"right single", floor.Door{Width: 90, DoorType: floor.DoorSingle, OpenDirection: floor.OpenRight}, -30, true},
		{"left glass", floor.Door{Width: 90, DoorType: floor.DoorGlass, OpenDirection: floor.OpenLeft}, 30, true},
		{"sliding", floor.Door{Width: 90, DoorType: floor.DoorSliding}, -30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := render(t, floor.Element{Props: tt.door})
			fills := rec.Filter(surface.OpKindFill)
			handle := fills[len(fills)-1]
			if x, y := handle.Center(); !near(x, tt.handleX) || !near(y, 0) {
				t.Errorf("handle centre = (%v,%v), want (%v,0)", x, y, tt.handleX)
			}
			swing := 0
			for _, op := range rec.Filter(surface.OpKindStroke) {
				if len(op.Dash) > 0 {
					swing++
				}
			}
			if (swing == 1) != tt.wantSwing {
				t.Errorf("dashed swing arcs = %d, want swing=%v", swing, tt.wantSwing)
			}
		})
	}
}

func TestWindowFrame(t *testing.T) {
	noFrame := false
	framed := render(t, floor.Element{Props: floor.Window{}})
	bare := render(t, floor.Element{Props: floor.Window{HasFrame: &noFrame}})
	if n := len(framed.Filter(surface.OpKindFill)); n != 2 {
		t.Errorf("framed fills = %d, want 2", n)
	}
	if n := len(bare.Filter(surface.OpKindFill)); n != 1 {
		t.Errorf("unframed fills = %d, want 1", n)
	}
	glass := bare.Filter(surface.OpKindFill)[0]
	if !glass.Fill.IsGradient() {
		t.Error("window glass should be a gradient")
	}
	x0, _, x1, _ := glass.Bounds()
	if x0 != -50 || x1 != 50 {
		t.Errorf("default window width = %v, want 100", x1-x0)
	}
}

func TestPlantDeterministic(t *testing.T) {
	e := floor.Element{X: 10, Y: 10, Props: floor.Plant{PlantType: floor.PlantPotted}}
	a, b := surface.NewRecorder(), surface.NewRecorder()
	newRenderer(42).Render(a, e)
	newRenderer(42).Render(b, e)
	if !reflect.DeepEqual(a.Ops, b.Ops) {
		t.Error("same seed should give the same plant")
	}

	// Pot, then 5 leaves; stems are strokes.
	if n := len(a.Filter(surface.OpKindFill)); n != 1+leafCount {
		t.Errorf("potted fills = %d, want %d", n, 1+leafCount)
	}
	// Pot outline plus three stems.
	if n := len(a.Filter(surface.OpKindStroke)); n != 4 {
		t.Errorf("potted strokes = %d, want 4", n)
	}
}

func TestPlantTypes(t *testing.T) {
	tree := render(t, floor.Element{Props: floor.Plant{PlantType: floor.PlantTree, Size: floor.PlantLarge}})
	if n := len(tree.Filter(surface.OpKindFill)); n != 3 {
		t.Errorf("tree fills = %d, want pot, trunk and canopy", n)
	}
	bush := render(t, floor.Element{Props: floor.Plant{PlantType: floor.PlantBush}})
	if n := len(bush.Filter(surface.OpKindFill)); n != 4 {
		t.Errorf("bush fills = %d, want pot and 3 clumps", n)
	}
	pot := bush.Filter(surface.OpKindFill)[0]
	if len(pot.Path) != 5 {
		t.Errorf("pot path = %d segments, want a closed quadrilateral", len(pot.Path))
	}
}

func TestBarStools(t *testing.T) {
	rec := render(t, floor.Element{Props: floor.Bar{Width: 200, Height: 60, HasSeating: true, SeatCount: 3}})
	fills := rec.Filter(surface.OpKindFill)
	// Body, highlight, then one circle per stool.
	if len(fills) != 5 {
		t.Fatalf("fills = %d, want 5", len(fills))
	}
	if !fills[1].Fill.IsGradient() {
		t.Error("highlight band should be a gradient")
	}
	for i, op := range fills[2:] {
		x, y := op.Center()
		wantX := -100 + 50*float64(i+1)
		if !near(x, wantX) || !near(y, 55) {
			t.Errorf("stool %d at (%v,%v), want (%v,55)", i, x, y, wantX)
		}
	}

	unseated := render(t, floor.Element{Props: floor.Bar{HasSeating: true}})
	if n := len(unseated.Filter(surface.OpKindFill)); n != 2 {
		t.Errorf("bar without seat count drew %d fills", n)
	}
}

func TestColumn(t *testing.T) {
	round := render(t, floor.Element{Props: floor.Column{ColumnType: floor.ColumnRound}})
	if seg := round.Filter(surface.OpKindFill)[0].Path[1]; seg.Op != surface.OpArc || seg.R != 20 {
		t.Errorf("round column = %+v", seg)
	}
	deco := render(t, floor.Element{Props: floor.Column{ColumnType: floor.ColumnDecorative, Diameter: 60}})
	if n := len(deco.Filter(surface.OpKindStroke)); n != 1+columnRings {
		t.Errorf("decorative strokes = %d, want %d", n, 1+columnRings)
	}
}

func TestStairs(t *testing.T) {
	rec := render(t, floor.Element{Props: floor.Stairs{StepCount: 4, Direction: floor.StairsDown, HasRailings: true}})
	fills := rec.Filter(surface.OpKindFill)
	if len(fills) != 4 {
		t.Fatalf("steps = %d, want 4", len(fills))
	}
	x0, y0, x1, y1 := fills[3].Bounds()
	if x1-x0 != 100-2*3*stairTaper || y0 != 60 || y1 != 80 {
		t.Errorf("top step = (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}
	if fills[0].Fill.Color == fills[1].Fill.Color {
		t.Error("step tones should alternate")
	}
	if got := rec.Texts(); len(got) != 1 || got[0] != "↓" {
		t.Errorf("arrow = %v", got)
	}

	// The railing rises as far as the treads run, whatever the element height.
	tall := render(t, floor.Element{Props: floor.Stairs{Height: 300, StepCount: 4, HasRailings: true}})
	strokes := tall.Filter(surface.OpKindStroke)
	rail := strokes[len(strokes)-1]
	x0, y0, x1, y1 = rail.Bounds()
	if x0 != -50 || x1 != 50 || y0 != -stairsRun || y1 != 0 {
		t.Errorf("railing = (%v,%v)-(%v,%v), want (-50,%v)-(50,0)", x0, y0, x1, y1, -stairsRun)
	}
}

func TestArtworkFrames(t *testing.T) {
	none := render(t, floor.Element{Props: floor.Artwork{FrameStyle: floor.FrameNone}})
	if n := len(none.Filter(surface.OpKindFill)); n != 1 {
		t.Errorf("frameless fills = %d, want 1", n)
	}
	def := render(t, floor.Element{Props: floor.Artwork{}})
	fills := def.Filter(surface.OpKindFill)
	if len(fills) != 2 || fills[0].Fill.Color != paint.FrameColor(floor.FrameModern) {
		t.Errorf("unset frame should draw a modern frame, got %+v", fills)
	}
}

func TestCarpetPatterns(t *testing.T) {
	floral := render(t, floor.Element{Props: floor.Carpet{Pattern: floor.PatternFloral}})
	// 3 columns × 2 rows of flowers plus the border.
	if n := len(floral.Filter(surface.OpKindStroke)); n != 7 {
		t.Errorf("floral strokes = %d, want 7", n)
	}
	geo := render(t, floor.Element{Props: floor.Carpet{Pattern: floor.PatternGeometric}})
	if n := len(geo.Filter(surface.OpKindStroke)); n != 25 {
		t.Errorf("geometric strokes = %d, want 25", n)
	}
	body := geo.Filter(surface.OpKindFill)[0]
	if body.Fill.Color != paint.DefaultTheme().Accent {
		t.Error("carpet without colour should use accent")
	}
}

func TestFireplace(t *testing.T) {
	lit := render(t, floor.Element{Props: floor.Fireplace{IsLit: true}})
	unlit := render(t, floor.Element{Props: floor.Fireplace{}})
	// Body, opening, mantle; lit adds three flames.
	if n := len(unlit.Filter(surface.OpKindFill)); n != 3 {
		t.Errorf("unlit fills = %d, want 3", n)
	}
	fills := lit.Filter(surface.OpKindFill)
	if len(fills) != 3+flameCount {
		t.Fatalf("lit fills = %d, want %d", len(fills), 3+flameCount)
	}
	for _, f := range fills[2 : 2+flameCount] {
		if g := f.Fill.Gradient; g == nil || g.Kind != paint.Radial {
			t.Error("flames should use the radial fire gradient")
		}
	}
	if fills[1].Fill.Color == unlit.Filter(surface.OpKindFill)[1].Fill.Color {
		t.Error("lit and unlit openings should differ")
	}
}
