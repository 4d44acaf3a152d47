// Package interaction turns pointer input on the canvas into table selection
// and drag-to-move events.
//
// The controller has two states. In [Idle], a pointer-down over a table
// selects it and starts a drag; a pointer-down over empty canvas deselects.
// In [Dragging], every pointer move reports the dragged table's new position,
// snapped to the grid, and pointer-up or pointer-leave ends the drag.
//
// The controller never mutates tables. The caller applies [EventMove] events
// to its own store.
package interaction

import (
	"encoding/json"
	"math"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/viewport"
)

// State is the controller state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// EventKind identifies an emitted event.
type EventKind string

const (
	EventSelect   EventKind = "select"
	EventDeselect EventKind = "deselect"
	EventMove     EventKind = "move"
)

// Event is emitted in response to pointer input. Table is set for select
// events; TableID, X and Y for move events.
type Event struct {
	Kind    EventKind    `json:"kind"`
	Table   *floor.Table `json:"table,omitempty"`
	TableID string       `json:"tableId,omitempty"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
}

// MarshalJSON writes x and y for move events only. A move to the canvas edge
// keeps its zero coordinate.
func (e Event) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind    EventKind    `json:"kind"`
		Table   *floor.Table `json:"table,omitempty"`
		TableID string       `json:"tableId,omitempty"`
		X       *float64     `json:"x,omitempty"`
		Y       *float64     `json:"y,omitempty"`
	}{Kind: e.Kind, Table: e.Table, TableID: e.TableID}
	if e.Kind == EventMove {
		out.X, out.Y = &e.X, &e.Y
	}
	return json.Marshal(out)
}

// Controller tracks pointer state for one canvas.
type Controller struct {
	vp       *viewport.Viewport
	grid     float64
	state    State
	dragging string
	offset   floor.Point
}

// New returns an idle controller reading coordinates through vp.
func New(vp *viewport.Viewport, cfg config.Canvas) *Controller {
	return &Controller{vp: vp, grid: cfg.GridSize}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Dragged returns the id of the table being dragged.
func (c *Controller) Dragged() (string, bool) {
	return c.dragging, c.state == Dragging
}

// PointerDown handles a press at screen point p over the given active tables.
// Hitting a table emits a select event and starts a drag that keeps the offset
// between the pointer and the table centre. Missing every table emits a
// deselect event and leaves the controller idle.
func (c *Controller) PointerDown(p floor.Point, tables []floor.Table) Event {
	world := c.vp.WorldFromScreen(p)
	hit, ok := HitTest(tables, world)
	if !ok {
		c.reset()
		return Event{Kind: EventDeselect}
	}
	c.state = Dragging
	c.dragging = hit.ID
	c.offset = world.Sub(hit.Position())
	return Event{Kind: EventSelect, Table: &hit}
}

// PointerMove handles a move to screen point p. While dragging it returns the
// dragged table's snapped position; while idle it returns false.
func (c *Controller) PointerMove(p floor.Point) (Event, bool) {
	if c.state != Dragging {
		return Event{}, false
	}
	pos := c.vp.WorldFromScreen(p).Sub(c.offset)
	return Event{
		Kind:    EventMove,
		TableID: c.dragging,
		X:       Snap(pos.X, c.grid),
		Y:       Snap(pos.Y, c.grid),
	}, true
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() { c.reset() }

// PointerLeave ends any drag when the pointer leaves the canvas.
func (c *Controller) PointerLeave() { c.reset() }

func (c *Controller) reset() {
	c.state = Idle
	c.dragging = ""
	c.offset = floor.Point{}
}

// HitTest returns the first table in list order whose centre lies within half
// its size of p. Rectangular tables are tested with the same circle, so clicks
// just outside a rounded square's corners still miss and clicks on the circle
// beyond its sides still hit.
func HitTest(tables []floor.Table, p floor.Point) (floor.Table, bool) {
	for _, t := range tables {
		if p.Dist(t.Position()) <= t.Size()/2 {
			return t, true
		}
	}
	return floor.Table{}, false
}

// Snap rounds v to the nearest multiple of grid, rounding halves up.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Floor(v/grid+0.5) * grid
}
