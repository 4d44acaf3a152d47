package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/surface"
	"github.com/matzehuels/floorplan/pkg/viewport"
)

func newComposer() *Composer {
	return New(config.Default(), WithRand(rand.New(rand.NewPCG(7, 7))))
}

func sampleFrame() Frame {
	p := floor.SamplePlan()
	p.AddElement(floor.Element{ID: "carpet", X: 300, Y: 300, Layer: 0, Props: floor.Carpet{}})
	p.AddElement(floor.Element{ID: "bar", X: 800, Y: 600, Layer: 2, Props: floor.Bar{}})
	return Frame{
		View:     viewport.View{Zoom: 1},
		Tables:   p.Tables,
		Elements: p.Elements,
		Selected: "table-2",
	}
}

func TestComposeOrder(t *testing.T) {
	rec := surface.NewRecorder()
	newComposer().Compose(rec, sampleFrame())

	if rec.Ops[0].Kind != surface.OpKindClear {
		t.Fatalf("first op = %s, want clear", rec.Ops[0].Kind)
	}
	bg := rec.Ops[1]
	if bg.Kind != surface.OpKindFill || bg.Fill.Color != paint.DefaultTheme().Background {
		t.Errorf("second op should fill the background, got %+v", bg)
	}
	if rec.Ops[2].Kind != surface.OpKindStroke {
		t.Errorf("third op should stroke the grid, got %s", rec.Ops[2].Kind)
	}

	// Table labels come after every element op.
	firstText := -1
	for i, op := range rec.Ops {
		if op.Kind == surface.OpKindText && op.Text == "Mesa 1" {
			firstText = i
			break
		}
	}
	lastBar := -1
	for i, op := range rec.Ops {
		if op.Kind == surface.OpKindFill && op.Fill.Color == paint.BarColor("") {
			lastBar = i
		}
	}
	if firstText < 0 || lastBar < 0 || lastBar > firstText {
		t.Errorf("tables should be drawn after elements (bar at %d, first label at %d)", lastBar, firstText)
	}
	if rec.Depth() != 0 {
		t.Errorf("depth = %d", rec.Depth())
	}
}

func TestComposeSkipsExcluded(t *testing.T) {
	rec := surface.NewRecorder()
	newComposer().Compose(rec, sampleFrame())
	for _, s := range rec.Texts() {
		if s == "Mesa Temporal" {
			t.Error("excluded table was drawn")
		}
	}
	names := 0
	for _, s := range rec.Texts() {
		if len(s) > 4 && s[:4] == "Mesa" {
			names++
		}
	}
	if names != 3 {
		t.Errorf("drew %d table names, want 3", names)
	}
}

func TestComposeTransform(t *testing.T) {
	f := sampleFrame()
	f.View = viewport.View{Zoom: 2, Pan: floor.Point{X: 10, Y: 5}}
	rec := surface.NewRecorder()
	newComposer().Compose(rec, f)

	for _, op := range rec.Filter(surface.OpKindText) {
		if op.Text != "Mesa 1" {
			continue
		}
		// screen = (world + pan) × zoom
		if op.X != 420 || op.Y != 310 {
			t.Errorf("Mesa 1 label at (%v,%v), want (420,310)", op.X, op.Y)
		}
		return
	}
	t.Fatal("Mesa 1 not drawn")
}

func TestComposeNilSurface(t *testing.T) {
	newComposer().Compose(nil, sampleFrame())
}

func TestSortByLayer(t *testing.T) {
	in := []floor.Element{
		{ID: "a", Layer: 2},
		{ID: "b", Layer: 1},
		{ID: "c", Layer: 2},
		{ID: "d", Layer: 0},
	}
	got := SortByLayer(in)
	want := []string{"d", "b", "a", "c"}
	for i, e := range got {
		if e.ID != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if in[0].ID != "a" {
		t.Error("SortByLayer mutated its input")
	}
}

func TestGridStyle(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		zoom      float64
		wantPitch float64
		wantAlpha float64
	}{
		{1, 20, 1},
		{0.5, 40, 1},
		{2, 20, 0.5},
		{3, 20, 0.4},
	}
	for _, tt := range tests {
		pitch, alpha := GridStyle(cfg, tt.zoom)
		if pitch != tt.wantPitch || alpha != tt.wantAlpha {
			t.Errorf("GridStyle(%v) = (%v,%v), want (%v,%v)", tt.zoom, pitch, alpha, tt.wantPitch, tt.wantAlpha)
		}
	}

	cfg.AdaptiveGrid = false
	if pitch, alpha := GridStyle(cfg, 0.5); pitch != 20 || alpha != 1 {
		t.Errorf("fixed grid = (%v,%v)", pitch, alpha)
	}
}

func TestGridLines(t *testing.T) {
	rec := surface.NewRecorder()
	New(config.Default()).Compose(rec, Frame{View: viewport.View{Zoom: 1}})
	grid := rec.Filter(surface.OpKindStroke)
	if len(grid) != 1 {
		t.Fatalf("strokes = %d, want 1 grid stroke", len(grid))
	}
	// 61 vertical and 41 horizontal lines, two segments each.
	if n := len(grid[0].Path); n != 2*(61+41) {
		t.Errorf("grid segments = %d, want %d", n, 2*(61+41))
	}
}
