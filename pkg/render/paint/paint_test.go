package paint

import (
	"regexp"
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floor"
)

var hexRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestHSL(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{HSL(0, 0, 100), "#ffffff"},
		{HSL(0, 0, 0), "#000000"},
		{HSL(0, 100, 50), "#ff0000"},
		{HSL(120, 100, 25), "#008000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if c.Hex() != "#ff0000" || c.A != 1 {
		t.Errorf("ParseHex round trip = %s (a=%v)", c.Hex(), c.A)
	}
	short, err := ParseHex("#fff")
	if err != nil || short.Hex() != "#ffffff" {
		t.Errorf("short form = %v, %v", short.Hex(), err)
	}
	if _, err := ParseHex("red"); err == nil {
		t.Error("expected error for non-hex colour")
	}
}

func TestRGBAPremultiplied(t *testing.T) {
	r, _, _, a := HSLA(0, 100, 50, 0.5).RGBA()
	if a != 0x8000 {
		t.Errorf("alpha = %#x, want 0x8000", a)
	}
	if r != a {
		t.Errorf("premultiplied red = %#x, want %#x", r, a)
	}
}

func TestThemeOverride(t *testing.T) {
	th, err := DefaultTheme().Override(map[string]string{"primary": "#112233"})
	if err != nil {
		t.Fatal(err)
	}
	if th.Primary.Hex() != "#112233" {
		t.Errorf("primary = %s", th.Primary.Hex())
	}
	if th.Accent != DefaultTheme().Accent {
		t.Error("override changed an unrelated slot")
	}

	if _, err := DefaultTheme().Override(map[string]string{"nope": "#000000"}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown slot: got %v", err)
	}
	if _, err := DefaultTheme().Override(map[string]string{"accent": "green"}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad colour: got %v", err)
	}
	def := DefaultTheme()
	for _, name := range SlotNames() {
		if !hexRe.MatchString(def.slots()[name].Hex()) {
			t.Errorf("slot %s has invalid hex", name)
		}
	}
}

func TestMaterialColor(t *testing.T) {
	th := DefaultTheme()
	if th.MaterialColor(floor.MaterialMarble) != th.Muted {
		t.Error("marble should fall back to muted")
	}
	if th.MaterialColor("") != th.Muted {
		t.Error("unset material should fall back to muted")
	}
	if got := th.MaterialColor(floor.MaterialBrick); got != HSL(15, 45, 65) {
		t.Errorf("brick = %v", got)
	}
	if got := th.MaterialColor(floor.MaterialGlass).A; got != 0.6 {
		t.Errorf("glass alpha = %v, want 0.6", got)
	}
}

func TestPlantSize(t *testing.T) {
	tests := map[floor.PlantSize]float64{
		floor.PlantSmall:  20,
		floor.PlantMedium: 35,
		floor.PlantLarge:  50,
		"":                35,
	}
	for in, want := range tests {
		if got := PlantSize(in); got != want {
			t.Errorf("PlantSize(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPotAndBarDefaults(t *testing.T) {
	if PotColor("") != PotColor(floor.PotClassic) {
		t.Error("unset pot style should be classic")
	}
	if BarColor("") != BarColor(floor.BarWood) {
		t.Error("unset bar material should be wood")
	}
	if PotColor(floor.PotCeramic) == PotColor(floor.PotWicker) {
		t.Error("ceramic and wicker should differ")
	}
}

func TestFrameColor(t *testing.T) {
	if FrameStyle("") != floor.FrameModern {
		t.Error("unset frame style should resolve to modern")
	}
	if FrameColor("") != FrameColor(floor.FrameModern) {
		t.Error("unset frame colour should match modern")
	}
	if FrameColor(floor.FrameClassic) == FrameColor(floor.FrameRustic) {
		t.Error("classic and rustic frames should differ")
	}
}

func TestCarpetColor(t *testing.T) {
	th := DefaultTheme()
	if th.CarpetColor("") != th.Accent {
		t.Error("empty colour should use accent")
	}
	if th.CarpetColor("not-a-colour") != th.Accent {
		t.Error("bad colour should use accent")
	}
	if got := th.CarpetColor("#8b0000").Hex(); got != "#8b0000" {
		t.Errorf("carpet colour = %s", got)
	}
}

func TestGradients(t *testing.T) {
	th := DefaultTheme()
	g := th.WindowGlass(100, 60).Gradient
	if g == nil || g.Kind != Linear || len(g.Stops) != 3 {
		t.Fatalf("window glass = %+v", g)
	}
	if g.X0 != -50 || g.Y1 != 30 {
		t.Errorf("window glass endpoints = (%v,%v)->(%v,%v)", g.X0, g.Y0, g.X1, g.Y1)
	}
	f := Flames(60).Gradient
	if f.Kind != Radial || f.Y0 != 15 || f.R1 != 30 {
		t.Errorf("flames = %+v", f)
	}
	if th.ArtworkFill(floor.ArtPainting, 10, 10).Color != th.Accent {
		t.Error("painting should use accent")
	}
	if !th.ArtworkFill(floor.ArtMirror, 10, 10).IsGradient() {
		t.Error("mirror should be a gradient")
	}
	if th.ArtworkFill(floor.ArtScreen, 10, 10).Color != th.Muted {
		t.Error("screen should be muted")
	}
}

func TestTableStyles(t *testing.T) {
	th := DefaultTheme()
	c0, w0 := th.TableStroke(false)
	c1, w1 := th.TableStroke(true)
	if c0.H == c1.H {
		t.Error("selected stroke should use a different hue")
	}
	if w1 <= w0 {
		t.Error("selected stroke should be heavier")
	}
	if TableShadow(true).Blur <= TableShadow(false).Blur {
		t.Error("selected shadow should be stronger")
	}
	if !th.TableFill(40, false).IsGradient() {
		t.Error("table fill should be a gradient")
	}
}
