package floor

// Category groups templates in the elements panel.
type Category string

const (
	CategoryStructural Category = "structural"
	CategoryFurniture  Category = "furniture"
	CategoryDecorative Category = "decorative"
)

// Template is a ready-made element configuration offered by the elements panel.
type Template struct {
	ID       string
	Name     string
	Category Category
	Width    float64
	Height   float64
	Props    Props
}

func ptr[T any](v T) *T { return &v }

var templates = []Template{
	{ID: "wall", Name: "Wall", Category: CategoryStructural, Width: 200, Height: 8,
		Props: Wall{EndX: 200, EndY: 0, Thickness: 8, Material: MaterialConcrete}},
	{ID: "door", Name: "Door", Category: CategoryStructural, Width: 80, Height: 20,
		Props: Door{Width: 80, DoorType: DoorSingle, OpenDirection: OpenRight}},
	{ID: "window", Name: "Window", Category: CategoryStructural, Width: 100, Height: 60,
		Props: Window{Width: 100, Height: 60, WindowType: WindowStandard, HasFrame: ptr(true)}},
	{ID: "column", Name: "Column", Category: CategoryStructural, Width: 40, Height: 40,
		Props: Column{Diameter: 40, ColumnType: ColumnRound, Material: MaterialConcrete}},
	{ID: "stairs", Name: "Stairs", Category: CategoryStructural, Width: 100, Height: 120,
		Props: Stairs{Width: 100, Height: 120, StepCount: 8, Direction: StairsUp, HasRailings: true}},
	{ID: "bar", Name: "Bar", Category: CategoryFurniture, Width: 200, Height: 60,
		Props: Bar{Width: 200, Height: 60, Material: BarWood, HasSeating: true, SeatCount: 6}},
	{ID: "fireplace", Name: "Fireplace", Category: CategoryFurniture, Width: 120, Height: 100,
		Props: Fireplace{Width: 120, Height: 100, FireplaceType: FireplaceTraditional, IsLit: true}},
	{ID: "plant", Name: "Plant", Category: CategoryDecorative, Width: 35, Height: 35,
		Props: Plant{PlantType: PlantPotted, Size: PlantMedium, PotStyle: PotClassic}},
	{ID: "artwork", Name: "Artwork", Category: CategoryDecorative, Width: 80, Height: 60,
		Props: Artwork{Width: 80, Height: 60, ArtType: ArtPainting, FrameStyle: FrameClassic}},
	{ID: "carpet", Name: "Carpet", Category: CategoryDecorative, Width: 120, Height: 80,
		Props: Carpet{Width: 120, Height: 80, Pattern: PatternGeometric}},
}

// Templates returns the element templates in panel order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplatesIn returns the templates belonging to c.
func TemplatesIn(c Category) []Template {
	var out []Template
	for _, t := range templates {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// TemplateFor returns the template for an element type.
func TemplateFor(t ElementType) (Template, bool) {
	for _, tpl := range templates {
		if tpl.Props.Type() == t {
			return tpl, true
		}
	}
	return Template{}, false
}

// Instantiate returns a new element from the template anchored at (x, y).
// The element has no id; [Plan.AddElement] assigns one.
func (t Template) Instantiate(x, y float64) Element {
	props := t.Props
	if w, ok := props.(Wall); ok {
		// Wall ends are absolute, so shift them along with the anchor.
		w.EndX += x
		w.EndY += y
		props = w
	}
	if w, ok := props.(Window); ok && w.HasFrame != nil {
		w.HasFrame = ptr(*w.HasFrame)
		props = w
	}
	return Element{X: x, Y: y, Layer: DefaultLayer, Props: props}
}
