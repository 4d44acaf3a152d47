package floor

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Shape is the outline of a table.
type Shape string

const (
	ShapeCircular    Shape = "circular"
	ShapeRectangular Shape = "rectangular"
)

// Status controls whether a table appears on the canvas.
type Status string

const (
	StatusActive   Status = "active"
	StatusExcluded Status = "excluded"
)

// TableMaterial is the optional surface material of a table.
type TableMaterial string

const (
	TableWood  TableMaterial = "wood"
	TableGlass TableMaterial = "glass"
	TableMetal TableMaterial = "metal"
)

// DefaultDiningArea is assigned to tables created from the elements panel.
const DefaultDiningArea = "interior"

// Table size constants. A table's rendered size grows with its maximum capacity.
const (
	minTableSize   = 40.0
	sizePerSeat    = 8.0
	rectangleRatio = 0.8
)

// Point is a position in world (canvas logical) coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Capacity is an inclusive guest range. Valid ranges satisfy 1 <= Min <= Max.
type Capacity struct {
	Min int `json:"min" toml:"min"`
	Max int `json:"max" toml:"max"`
}

// String formats the range as "min-max".
func (c Capacity) String() string { return fmt.Sprintf("%d-%d", c.Min, c.Max) }

// Table is a seatable table placed on the floor plan.
type Table struct {
	ID         string        `json:"id" toml:"id"`
	Name       string        `json:"name" toml:"name"`
	X          float64       `json:"x" toml:"x"`
	Y          float64       `json:"y" toml:"y"`
	Shape      Shape         `json:"shape" toml:"shape"`
	Capacity   Capacity      `json:"capacity" toml:"capacity"`
	DiningArea string        `json:"diningArea" toml:"dining_area"`
	Status     Status        `json:"status" toml:"status"`
	Rotation   float64       `json:"rotation,omitempty" toml:"rotation,omitempty"`
	Material   TableMaterial `json:"material,omitempty" toml:"material,omitempty"`
}

// Position returns the table centre.
func (t Table) Position() Point { return Point{t.X, t.Y} }

// Active reports whether the table is shown on the canvas.
func (t Table) Active() bool { return t.Status == StatusActive }

// Size returns the rendered diameter (circular) or bounding size (rectangular)
// of the table in world units: max(40, capacity.max × 8).
func (t Table) Size() float64 {
	return max(minTableSize, float64(t.Capacity.Max)*sizePerSeat)
}

// RectSize returns the side of the rounded square drawn for rectangular tables.
func (t Table) RectSize() float64 { return t.Size() * rectangleRatio }

// TableConfig is the shape/capacity/name choice used to create a table.
type TableConfig struct {
	Shape       Shape  `json:"shape"`
	MinCapacity int    `json:"minCapacity"`
	MaxCapacity int    `json:"maxCapacity"`
	Name        string `json:"name"`
}

// DefaultTableConfig returns the configuration used by the elements panel:
// capacity 2-4 and the given name.
func DefaultTableConfig(shape Shape, name string) TableConfig {
	return TableConfig{Shape: shape, MinCapacity: 2, MaxCapacity: 4, Name: name}
}

// Validate reports per-field problems with the configuration.
func (c TableConfig) Validate() errors.FieldErrors {
	return validateFields(c.Name, c.Shape, c.MinCapacity, c.MaxCapacity)
}

// ValidateTable reports per-field problems with a table edited through the
// configuration form. Field keys are "name", "shape", "minCapacity",
// "maxCapacity" and "capacity" (inverted range).
func ValidateTable(t Table) errors.FieldErrors {
	return validateFields(t.Name, t.Shape, t.Capacity.Min, t.Capacity.Max)
}

func validateFields(name string, shape Shape, lo, hi int) errors.FieldErrors {
	fe := errors.FieldErrors{}
	if strings.TrimSpace(name) == "" {
		fe.Add("name", "name is required")
	}
	if shape != ShapeCircular && shape != ShapeRectangular {
		fe.Add("shape", fmt.Sprintf("unknown shape %q", shape))
	}
	if lo < 1 {
		fe.Add("minCapacity", "minimum capacity must be greater than 0")
	}
	if hi < 1 {
		fe.Add("maxCapacity", "maximum capacity must be greater than 0")
	}
	if lo >= 1 && hi >= 1 && lo > hi {
		fe.Add("capacity", "minimum capacity cannot exceed maximum capacity")
	}
	return fe
}
