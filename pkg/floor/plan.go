package floor

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Default placement used when elements are added without a position.
const (
	DefaultElementX = 600.0
	DefaultElementY = 400.0
	DefaultLayer    = 1
)

// Plan is the mutable store of tables and elements for one floor.
// Plan is not safe for concurrent use.
type Plan struct {
	Name     string    `json:"name,omitempty"`
	Tables   []Table   `json:"tables"`
	Elements []Element `json:"elements"`
}

// Snapshot is the payload delivered when a plan is saved: the tables currently
// shown on the canvas, every element, and the time of the save.
type Snapshot struct {
	Tables   []Table   `json:"tables"`
	Elements []Element `json:"elements"`
	SavedAt  time.Time `json:"savedAt"`
}

// NewID returns a fresh identifier of the form "<prefix>-<uuid>".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Table returns the table with the given id.
func (p *Plan) Table(id string) (Table, bool) {
	if i := p.tableIndex(id); i >= 0 {
		return p.Tables[i], true
	}
	return Table{}, false
}

func (p *Plan) tableIndex(id string) int {
	return slices.IndexFunc(p.Tables, func(t Table) bool { return t.ID == id })
}

func (p *Plan) mustTable(id string) (int, error) {
	i := p.tableIndex(id)
	if i < 0 {
		return -1, errors.New(errors.ErrCodeTableNotFound, "table %q not found", id)
	}
	return i, nil
}

// AddTable appends a new active table built from cfg at (x, y). The table
// gets a fresh id and the default dining area.
func (p *Plan) AddTable(cfg TableConfig, x, y float64) Table {
	t := Table{
		ID:         NewID("table"),
		Name:       cfg.Name,
		X:          x,
		Y:          y,
		Shape:      cfg.Shape,
		Capacity:   Capacity{Min: cfg.MinCapacity, Max: cfg.MaxCapacity},
		DiningArea: DefaultDiningArea,
		Status:     StatusActive,
	}
	p.Tables = append(p.Tables, t)
	return t
}

// UpdateTable replaces the stored table with the same id. Invalid input is
// returned as [errors.FieldErrors] and leaves the plan unchanged.
func (p *Plan) UpdateTable(t Table) error {
	i, err := p.mustTable(t.ID)
	if err != nil {
		return err
	}
	if fe := ValidateTable(t); !fe.Empty() {
		return fe
	}
	p.Tables[i] = t
	return nil
}

// MoveTable sets the position of a table.
func (p *Plan) MoveTable(id string, x, y float64) error {
	i, err := p.mustTable(id)
	if err != nil {
		return err
	}
	p.Tables[i].X, p.Tables[i].Y = x, y
	return nil
}

// DeleteTable removes a table from the plan.
func (p *Plan) DeleteTable(id string) error {
	i, err := p.mustTable(id)
	if err != nil {
		return err
	}
	p.Tables = slices.Delete(p.Tables, i, i+1)
	return nil
}

// ExcludeTable hides a table from the canvas without deleting it.
func (p *Plan) ExcludeTable(id string) error {
	i, err := p.mustTable(id)
	if err != nil {
		return err
	}
	p.Tables[i].Status = StatusExcluded
	return nil
}

// RestoreTable makes an excluded table active again and places it at pos.
// All other fields are unchanged.
func (p *Plan) RestoreTable(id string, pos Point) (Table, error) {
	i, err := p.mustTable(id)
	if err != nil {
		return Table{}, err
	}
	p.Tables[i].Status = StatusActive
	p.Tables[i].X, p.Tables[i].Y = pos.X, pos.Y
	return p.Tables[i], nil
}

// AddElement appends e, assigning an id when empty and the default layer when
// unset. A zero coordinate is replaced by the canvas centre on that axis.
func (p *Plan) AddElement(e Element) Element {
	if e.ID == "" {
		e.ID = NewID("element")
	}
	if e.X == 0 {
		e.X = DefaultElementX
	}
	if e.Y == 0 {
		e.Y = DefaultElementY
	}
	if e.Layer == 0 {
		e.Layer = DefaultLayer
	}
	p.Elements = append(p.Elements, e)
	return e
}

// Element returns the element with the given id.
func (p *Plan) Element(id string) (Element, bool) {
	i := slices.IndexFunc(p.Elements, func(e Element) bool { return e.ID == id })
	if i < 0 {
		return Element{}, false
	}
	return p.Elements[i], true
}

// DeleteElement removes an element from the plan.
func (p *Plan) DeleteElement(id string) error {
	i := slices.IndexFunc(p.Elements, func(e Element) bool { return e.ID == id })
	if i < 0 {
		return errors.New(errors.ErrCodeNotFound, "element %q not found", id)
	}
	p.Elements = slices.Delete(p.Elements, i, i+1)
	return nil
}

// ActiveTables returns the tables shown on the canvas, in plan order.
func (p *Plan) ActiveTables() []Table {
	return p.filter(StatusActive)
}

// ExcludedTables returns the hidden tables, in plan order.
func (p *Plan) ExcludedTables() []Table {
	return p.filter(StatusExcluded)
}

func (p *Plan) filter(s Status) []Table {
	out := []Table{}
	for _, t := range p.Tables {
		if t.Status == s {
			out = append(out, t)
		}
	}
	return out
}

// TotalCapacity sums the maximum capacity of the active tables.
func (p *Plan) TotalCapacity() int {
	total := 0
	for _, t := range p.ActiveTables() {
		total += t.Capacity.Max
	}
	return total
}

// Snapshot captures the plan for saving.
func (p *Plan) Snapshot(at time.Time) Snapshot {
	return Snapshot{
		Tables:   p.ActiveTables(),
		Elements: slices.Clone(p.Elements),
		SavedAt:  at,
	}
}

// Clone returns a copy of p whose slices can be mutated independently.
func (p *Plan) Clone() *Plan {
	return &Plan{
		Name:     p.Name,
		Tables:   slices.Clone(p.Tables),
		Elements: slices.Clone(p.Elements),
	}
}
