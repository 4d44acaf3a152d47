// Package editor ties a floor plan to a viewport, a pointer controller and a
// scene composer, playing the role of the page that hosts the canvas.
//
// The editor owns the plan: it applies move events from dragging, tracks the
// selected table, and hands snapshots to a save hook. Callers observe changes
// through [Hooks].
//
// An Editor is not safe for concurrent use; servers wrap it in a mutex.
package editor

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/interaction"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/scene"
	"github.com/matzehuels/floorplan/pkg/render/surface"
	"github.com/matzehuels/floorplan/pkg/viewport"
)

// Hooks receive editor notifications. Nil hooks are skipped.
type Hooks struct {
	// OnTableMoved fires after a drag moved a table.
	OnTableMoved func(id string, x, y float64)
	// OnSelect fires with the selected table, or nil on deselect.
	OnSelect func(t *floor.Table)
	// OnSave receives the snapshot; its error is returned from Save.
	OnSave func(s floor.Snapshot) error
}

// Status summarises the plan for a status bar.
type Status struct {
	ZoomPercent    int    `json:"zoomPercent"`
	ActiveTables   int    `json:"activeTables"`
	ExcludedTables int    `json:"excludedTables"`
	Elements       int    `json:"elements"`
	TotalCapacity  int    `json:"totalCapacity"`
	Selected       string `json:"selected,omitempty"`
	Dragging       bool   `json:"dragging"`
}

// Editor is an interactive floor plan session.
type Editor struct {
	cfg      config.Canvas
	plan     *floor.Plan
	vp       *viewport.Viewport
	pointer  *interaction.Controller
	composer *scene.Composer
	hooks    Hooks
	logger   *log.Logger
	now      func() time.Time
	selected string

	theme paint.Theme
	rng   *rand.Rand
}

// Option configures an Editor.
type Option func(*Editor)

// WithHooks sets the notification hooks.
func WithHooks(h Hooks) Option { return func(e *Editor) { e.hooks = h } }

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option { return func(e *Editor) { e.logger = l } }

// WithTheme sets the palette.
func WithTheme(t paint.Theme) Option { return func(e *Editor) { e.theme = t } }

// WithRand makes procedural elements reproducible.
func WithRand(rng *rand.Rand) Option { return func(e *Editor) { e.rng = rng } }

// WithClock overrides the time source used for snapshots.
func WithClock(now func() time.Time) Option { return func(e *Editor) { e.now = now } }

// New returns an editor for plan.
func New(plan *floor.Plan, cfg config.Canvas, opts ...Option) *Editor {
	e := &Editor{
		cfg:    cfg,
		plan:   plan,
		vp:     viewport.New(cfg),
		logger: log.New(io.Discard),
		now:    time.Now,
		theme:  paint.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.pointer = interaction.New(e.vp, cfg)
	sopts := []scene.Option{scene.WithTheme(e.theme)}
	if e.rng != nil {
		sopts = append(sopts, scene.WithRand(e.rng))
	}
	e.composer = scene.New(cfg, sopts...)
	return e
}

// Plan returns the edited plan.
func (e *Editor) Plan() *floor.Plan { return e.plan }

// Viewport returns the canvas viewport.
func (e *Editor) Viewport() *viewport.Viewport { return e.vp }

// Canvas returns the canvas configuration.
func (e *Editor) Canvas() config.Canvas { return e.cfg }

// Theme returns the palette the editor paints with.
func (e *Editor) Theme() paint.Theme { return e.theme }

// Selected returns the selected table.
func (e *Editor) Selected() (floor.Table, bool) {
	if e.selected == "" {
		return floor.Table{}, false
	}
	return e.plan.Table(e.selected)
}

// Select selects a table by id; an empty id deselects.
func (e *Editor) Select(id string) error {
	if id == "" {
		e.setSelected(nil)
		return nil
	}
	t, ok := e.plan.Table(id)
	if !ok {
		return errors.New(errors.ErrCodeTableNotFound, "table %q not found", id)
	}
	e.setSelected(&t)
	return nil
}

func (e *Editor) setSelected(t *floor.Table) {
	if t == nil {
		e.selected = ""
	} else {
		e.selected = t.ID
	}
	if e.hooks.OnSelect != nil {
		e.hooks.OnSelect(t)
	}
}

// AddTable creates an active table from cfg centred on world point (x, y).
// An invalid cfg is returned as [errors.FieldErrors] and nothing is added.
func (e *Editor) AddTable(cfg floor.TableConfig, x, y float64) (floor.Table, error) {
	if fe := cfg.Validate(); !fe.Empty() {
		return floor.Table{}, fe
	}
	t := e.plan.AddTable(cfg, x, y)
	e.logger.Info("table added", "id", t.ID, "name", t.Name, "capacity", t.Capacity, "x", t.X, "y", t.Y)
	return t, nil
}

// NewTablePosition is where tables are placed when the caller gives no
// position.
func (e *Editor) NewTablePosition() (x, y float64) {
	return e.cfg.NewTableX, e.cfg.NewTableY
}

// AddElement adds an element, filling in id, position and layer defaults.
func (e *Editor) AddElement(el floor.Element) floor.Element {
	el = e.plan.AddElement(el)
	e.logger.Info("element added", "id", el.ID, "type", el.Type())
	return el
}

// AddTemplate instantiates the template for typ at the canvas centre.
func (e *Editor) AddTemplate(typ floor.ElementType) (floor.Element, error) {
	tpl, ok := floor.TemplateFor(typ)
	if !ok {
		return floor.Element{}, errors.New(errors.ErrCodeInvalidElement, "no template for element type %q", typ)
	}
	return e.AddElement(tpl.Instantiate(floor.DefaultElementX, floor.DefaultElementY)), nil
}

// UpdateTable saves an edited table. Field problems come back as
// [errors.FieldErrors].
func (e *Editor) UpdateTable(t floor.Table) error {
	if err := e.plan.UpdateTable(t); err != nil {
		return err
	}
	e.logger.Info("table updated", "id", t.ID)
	return nil
}

// DeleteTable removes a table, deselecting it first if needed.
func (e *Editor) DeleteTable(id string) error {
	if err := e.plan.DeleteTable(id); err != nil {
		return err
	}
	if e.selected == id {
		e.setSelected(nil)
	}
	e.logger.Info("table deleted", "id", id)
	return nil
}

// ExcludeTable hides a table from the canvas.
func (e *Editor) ExcludeTable(id string) error {
	if err := e.plan.ExcludeTable(id); err != nil {
		return err
	}
	if e.selected == id {
		e.setSelected(nil)
	}
	e.logger.Info("table excluded", "id", id)
	return nil
}

// RestoreTable brings an excluded table back at the configured restore point.
func (e *Editor) RestoreTable(id string) (floor.Table, error) {
	t, err := e.plan.RestoreTable(id, floor.Point{X: e.cfg.RestoreX, Y: e.cfg.RestoreY})
	if err != nil {
		return floor.Table{}, err
	}
	e.logger.Info("table restored", "id", id, "x", t.X, "y", t.Y)
	return t, nil
}

// PointerDown forwards a press at screen point p.
func (e *Editor) PointerDown(p floor.Point) interaction.Event {
	ev := e.pointer.PointerDown(p, e.plan.ActiveTables())
	e.setSelected(ev.Table)
	return ev
}

// PointerMove forwards a move and applies the resulting table move.
func (e *Editor) PointerMove(p floor.Point) (interaction.Event, bool) {
	ev, ok := e.pointer.PointerMove(p)
	if !ok {
		return ev, false
	}
	if err := e.plan.MoveTable(ev.TableID, ev.X, ev.Y); err != nil {
		e.logger.Warn("move dropped", "id", ev.TableID, "err", err)
		e.pointer.PointerUp()
		return interaction.Event{}, false
	}
	e.logger.Debug("table moved", "id", ev.TableID, "x", ev.X, "y", ev.Y)
	if e.hooks.OnTableMoved != nil {
		e.hooks.OnTableMoved(ev.TableID, ev.X, ev.Y)
	}
	return ev, true
}

// PointerUp ends a drag.
func (e *Editor) PointerUp() { e.pointer.PointerUp() }

// PointerLeave cancels a drag.
func (e *Editor) PointerLeave() { e.pointer.PointerLeave() }

// ZoomIn zooms in one step and returns the new zoom.
func (e *Editor) ZoomIn() float64 { return e.vp.ZoomIn() }

// ZoomOut zooms out one step and returns the new zoom.
func (e *Editor) ZoomOut() float64 { return e.vp.ZoomOut() }

// ZoomBy changes the zoom by delta and returns the new zoom.
func (e *Editor) ZoomBy(delta float64) float64 { return e.vp.ZoomBy(delta) }

// ResetView returns to zoom 1 and no pan.
func (e *Editor) ResetView() { e.vp.Reset() }

// PanBy shifts the view by (dx, dy) world units.
func (e *Editor) PanBy(dx, dy float64) { e.vp.PanBy(dx, dy) }

// SetOrigin records where the canvas sits in the frame that pointer
// coordinates are measured in.
func (e *Editor) SetOrigin(p floor.Point) { e.vp.SetOrigin(p) }

// Save builds a snapshot of the active tables and elements and passes it to
// the save hook.
func (e *Editor) Save() (floor.Snapshot, error) {
	snap := e.plan.Snapshot(e.now())
	if e.hooks.OnSave != nil {
		if err := e.hooks.OnSave(snap); err != nil {
			e.logger.Error("save failed", "err", err)
			return snap, err
		}
	}
	e.logger.Info("plan saved", "tables", len(snap.Tables), "elements", len(snap.Elements))
	return snap, nil
}

// Frame returns the current frame for the composer.
func (e *Editor) Frame() scene.Frame {
	return scene.Frame{
		View:     e.vp.View(),
		Tables:   e.plan.ActiveTables(),
		Elements: e.plan.Elements,
		Selected: e.selected,
	}
}

// Render paints the current state onto s.
func (e *Editor) Render(s surface.Surface) { e.composer.Compose(s, e.Frame()) }

// Status returns the status bar summary.
func (e *Editor) Status() Status {
	_, dragging := e.pointer.Dragged()
	return Status{
		ZoomPercent:    e.vp.Percent(),
		ActiveTables:   len(e.plan.ActiveTables()),
		ExcludedTables: len(e.plan.ExcludedTables()),
		Elements:       len(e.plan.Elements),
		TotalCapacity:  e.plan.TotalCapacity(),
		Selected:       e.selected,
		Dragging:       dragging,
	}
}
