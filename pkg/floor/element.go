package floor

// ElementType is the type tag of a canvas element.
type ElementType string

const (
	TypeWall      ElementType = "wall"
	TypeDoor      ElementType = "door"
	TypeWindow    ElementType = "window"
	TypePlant     ElementType = "plant"
	TypeBar       ElementType = "bar"
	TypeColumn    ElementType = "column"
	TypeStairs    ElementType = "stairs"
	TypeArtwork   ElementType = "artwork"
	TypeCarpet    ElementType = "carpet"
	TypeFireplace ElementType = "fireplace"
)

// ElementTypes lists every known element type in panel order.
var ElementTypes = []ElementType{
	TypeWall, TypeDoor, TypeWindow, TypeColumn, TypeStairs,
	TypeBar, TypeFireplace, TypePlant, TypeArtwork, TypeCarpet,
}

// Material is the construction material shared by walls and columns.
type Material string

const (
	MaterialBrick    Material = "brick"
	MaterialWood     Material = "wood"
	MaterialGlass    Material = "glass"
	MaterialConcrete Material = "concrete"
	MaterialMarble   Material = "marble"
	MaterialSteel    Material = "steel"
)

type DoorType string

const (
	DoorSingle  DoorType = "single"
	DoorDouble  DoorType = "double"
	DoorGlass   DoorType = "glass"
	DoorSliding DoorType = "sliding"
)

type OpenDirection string

const (
	OpenLeft  OpenDirection = "left"
	OpenRight OpenDirection = "right"
)

type WindowType string

const (
	WindowStandard   WindowType = "standard"
	WindowBay        WindowType = "bay"
	WindowFrench     WindowType = "french"
	WindowFloorToTop WindowType = "floor-to-ceiling"
)

type PlantType string

const (
	PlantPotted  PlantType = "potted"
	PlantTree    PlantType = "tree"
	PlantBush    PlantType = "bush"
	PlantHanging PlantType = "hanging"
)

type PlantSize string

const (
	PlantSmall  PlantSize = "small"
	PlantMedium PlantSize = "medium"
	PlantLarge  PlantSize = "large"
)

type PotStyle string

const (
	PotClassic PotStyle = "classic"
	PotModern  PotStyle = "modern"
	PotCeramic PotStyle = "ceramic"
	PotWicker  PotStyle = "wicker"
)

type BarMaterial string

const (
	BarWood    BarMaterial = "wood"
	BarMarble  BarMaterial = "marble"
	BarGranite BarMaterial = "granite"
	BarSteel   BarMaterial = "steel"
)

type ColumnType string

const (
	ColumnRound      ColumnType = "round"
	ColumnSquare     ColumnType = "square"
	ColumnDecorative ColumnType = "decorative"
)

type StairsDirection string

const (
	StairsUp   StairsDirection = "up"
	StairsDown StairsDirection = "down"
)

type ArtworkType string

const (
	ArtPainting  ArtworkType = "painting"
	ArtSculpture ArtworkType = "sculpture"
	ArtMirror    ArtworkType = "mirror"
	ArtScreen    ArtworkType = "screen"
)

type FrameStyle string

const (
	FrameClassic FrameStyle = "classic"
	FrameModern  FrameStyle = "modern"
	FrameRustic  FrameStyle = "rustic"
	FrameNone    FrameStyle = "none"
)

type CarpetPattern string

const (
	PatternSolid     CarpetPattern = "solid"
	PatternGeometric CarpetPattern = "geometric"
	PatternFloral    CarpetPattern = "floral"
	PatternPersian   CarpetPattern = "persian"
)

type FireplaceType string

const (
	FireplaceTraditional FireplaceType = "traditional"
	FireplaceModern      FireplaceType = "modern"
	FireplaceElectric    FireplaceType = "electric"
)

// Props is the type-specific payload of an Element. The concrete type of a
// Props value is the element's type tag.
type Props interface {
	Type() ElementType
	props()
}

// Element is a structural or decorative object on the canvas. X and Y anchor
// the element in world coordinates; Rotation is in degrees.
type Element struct {
	ID       string
	X, Y     float64
	Rotation float64
	Layer    int
	Props    Props
}

// Type returns the element's type tag, or "" when Props is nil.
func (e Element) Type() ElementType {
	if e.Props == nil {
		return ""
	}
	return e.Props.Type()
}

// Wall is a straight segment from the element anchor to (EndX, EndY).
type Wall struct {
	EndX      float64  `json:"endX"`
	EndY      float64  `json:"endY"`
	Thickness float64  `json:"thickness,omitempty"`
	Material  Material `json:"material,omitempty"`
	Color     string   `json:"color,omitempty"`
}

type Door struct {
	Width         float64       `json:"width,omitempty"`
	DoorType      DoorType      `json:"doorType,omitempty"`
	OpenDirection OpenDirection `json:"openDirection,omitempty"`
}

// Window is framed unless HasFrame is explicitly false.
type Window struct {
	Width      float64    `json:"width,omitempty"`
	Height     float64    `json:"height,omitempty"`
	WindowType WindowType `json:"windowType,omitempty"`
	HasFrame   *bool      `json:"hasFrame,omitempty"`
}

// Framed reports whether the window draws its outer frame.
func (w Window) Framed() bool { return w.HasFrame == nil || *w.HasFrame }

type Plant struct {
	PlantType PlantType `json:"plantType,omitempty"`
	Size      PlantSize `json:"size,omitempty"`
	PotStyle  PotStyle  `json:"potStyle,omitempty"`
}

type Bar struct {
	Width      float64     `json:"width,omitempty"`
	Height     float64     `json:"height,omitempty"`
	Material   BarMaterial `json:"barMaterial,omitempty"`
	HasSeating bool        `json:"hasSeating,omitempty"`
	SeatCount  int         `json:"seatCount,omitempty"`
}

type Column struct {
	Diameter   float64    `json:"diameter,omitempty"`
	ColumnType ColumnType `json:"columnType,omitempty"`
	Material   Material   `json:"material,omitempty"`
}

type Stairs struct {
	Width       float64         `json:"width,omitempty"`
	Height      float64         `json:"height,omitempty"`
	StepCount   int             `json:"stepCount,omitempty"`
	Direction   StairsDirection `json:"direction,omitempty"`
	HasRailings bool            `json:"hasRailings,omitempty"`
}

type Artwork struct {
	Width      float64     `json:"width,omitempty"`
	Height     float64     `json:"height,omitempty"`
	ArtType    ArtworkType `json:"artType,omitempty"`
	FrameStyle FrameStyle  `json:"frameStyle,omitempty"`
}

// Carpet colours are hex strings; an empty or unparsable colour falls back to
// the theme accent.
type Carpet struct {
	Width   float64       `json:"width,omitempty"`
	Height  float64       `json:"height,omitempty"`
	Pattern CarpetPattern `json:"pattern,omitempty"`
	Color   string        `json:"color,omitempty"`
}

type Fireplace struct {
	Width         float64       `json:"width,omitempty"`
	Height        float64       `json:"height,omitempty"`
	FireplaceType FireplaceType `json:"fireplaceType,omitempty"`
	IsLit         bool          `json:"isLit,omitempty"`
}

// Unknown holds an element whose type tag is not recognised. Its raw
// properties are kept so documents round-trip unchanged.
type Unknown struct {
	Kind ElementType
	Raw  []byte
}

func (Wall) Type() ElementType      { return TypeWall }
func (Door) Type() ElementType      { return TypeDoor }
func (Window) Type() ElementType    { return TypeWindow }
func (Plant) Type() ElementType     { return TypePlant }
func (Bar) Type() ElementType       { return TypeBar }
func (Column) Type() ElementType    { return TypeColumn }
func (Stairs) Type() ElementType    { return TypeStairs }
func (Artwork) Type() ElementType   { return TypeArtwork }
func (Carpet) Type() ElementType    { return TypeCarpet }
func (Fireplace) Type() ElementType { return TypeFireplace }
func (u Unknown) Type() ElementType { return u.Kind }

func (Wall) props()      {}
func (Door) props()      {}
func (Window) props()    {}
func (Plant) props()     {}
func (Bar) props()       {}
func (Column) props()    {}
func (Stairs) props()    {}
func (Artwork) props()   {}
func (Carpet) props()    {}
func (Fireplace) props() {}
func (Unknown) props()   {}

// NewProps returns the zero payload for t, or false if t is unknown.
func NewProps(t ElementType) (Props, bool) {
	switch t {
	case TypeWall:
		return Wall{}, true
	case TypeDoor:
		return Door{}, true
	case TypeWindow:
		return Window{}, true
	case TypePlant:
		return Plant{}, true
	case TypeBar:
		return Bar{}, true
	case TypeColumn:
		return Column{}, true
	case TypeStairs:
		return Stairs{}, true
	case TypeArtwork:
		return Artwork{}, true
	case TypeCarpet:
		return Carpet{}, true
	case TypeFireplace:
		return Fireplace{}, true
	}
	return nil, false
}
