package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/editor"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/interaction"
	"github.com/matzehuels/floorplan/pkg/observability"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/viewport"
)

type statusResp struct {
	editor.Status
	Metrics *observability.CounterSnapshot `json:"metrics,omitempty"`
}

type healthResp struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResp{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) plan(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WriteJSON(s.editor.Plan(), w); err != nil {
		s.logger.Error("write plan", "err", err)
	}
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := statusResp{Status: s.editor.Status()}
	if s.counters != nil {
		snap := s.counters.Snapshot()
		resp.Metrics = &snap
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) scene(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		data, err := s.frame(r, format)
		s.mu.Unlock()
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(data)
	}
}

// frame renders the editor's current view. Callers hold mu.
func (s *Server) frame(r *http.Request, format string) ([]byte, error) {
	view := s.editor.Viewport().View()
	selected, _ := s.editor.Selected()
	result, err := s.runner.RenderPlan(r.Context(), s.editor.Plan(), pipeline.Options{
		Formats:  []string{format},
		Zoom:     view.Zoom,
		PanX:     view.Pan.X,
		PanY:     view.Pan.Y,
		Selected: selected.ID,
	})
	if err != nil {
		return nil, err
	}
	return result.Artifacts[format], nil
}

type addTableReq struct {
	floor.TableConfig
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

func (s *Server) addTable(w http.ResponseWriter, r *http.Request) {
	req := addTableReq{TableConfig: floor.DefaultTableConfig(floor.ShapeCircular, "")}
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	x, y := s.editor.NewTablePosition()
	if req.X != nil {
		x = *req.X
	}
	if req.Y != nil {
		y = *req.Y
	}
	t, err := s.editor.AddTable(req.TableConfig, x, y)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) updateTable(w http.ResponseWriter, r *http.Request) {
	var t floor.Table
	if err := decode(r, &t); err != nil {
		s.writeError(w, r, err)
		return
	}
	t.ID = chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editor.UpdateTable(t); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) deleteTable(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editor.DeleteTable(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) excludeTable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editor.ExcludeTable(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, _ := s.editor.Plan().Table(id)
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) restoreTable(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.editor.RestoreTable(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) addElement(w http.ResponseWriter, r *http.Request) {
	var el floor.Element
	if err := decode(r, &el); err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, ok := el.Props.(floor.Unknown); ok || el.Props == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidElement, "unsupported element type %q", el.Type()))
		return
	}

	if el.ID != "" {
		if err := errors.ValidateID(el.ID); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if err := floor.ValidateProps(el); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusCreated, s.editor.AddElement(el))
}

type zoomReq struct {
	Delta float64 `json:"delta"`
}

type viewResp struct {
	viewport.View
	Percent int `json:"percent"`
}

func (s *Server) zoom(w http.ResponseWriter, r *http.Request) {
	var req zoomReq
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.ZoomBy(req.Delta)
	writeJSON(w, http.StatusOK, s.view())
}

func (s *Server) resetView(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.ResetView()
	writeJSON(w, http.StatusOK, s.view())
}

type panReq struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

func (s *Server) pan(w http.ResponseWriter, r *http.Request) {
	var req panReq
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.PanBy(req.DX, req.DY)
	writeJSON(w, http.StatusOK, s.view())
}

// setOrigin lets a client send pointer positions in page coordinates by
// reporting where the canvas sits on the page.
func (s *Server) setOrigin(w http.ResponseWriter, r *http.Request) {
	var origin floor.Point
	if err := decode(r, &origin); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.SetOrigin(origin)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) view() viewResp {
	vp := s.editor.Viewport()
	return viewResp{View: vp.View(), Percent: vp.Percent()}
}

// PointerKind names a pointer message.
type PointerKind string

// Pointer message kinds.
const (
	PointerDown  PointerKind = "down"
	PointerMove  PointerKind = "move"
	PointerUp    PointerKind = "up"
	PointerLeave PointerKind = "leave"
)

// PointerMsg is a pointer event in canvas-relative screen coordinates.
type PointerMsg struct {
	Kind PointerKind `json:"kind"`
	X    float64     `json:"x"`
	Y    float64     `json:"y"`
}

type pointerResp struct {
	Events []interaction.Event `json:"events"`
	Svg    string              `json:"svg,omitempty"`
}

func (s *Server) pointer(w http.ResponseWriter, r *http.Request) {
	var msg PointerMsg
	if err := decode(r, &msg); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.apply(msg)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pointerResp{Events: events})
}

// apply feeds msg to the editor. Callers hold mu.
func (s *Server) apply(msg PointerMsg) ([]interaction.Event, error) {
	p := floor.Point{X: msg.X, Y: msg.Y}
	events := []interaction.Event{}
	switch msg.Kind {
	case PointerDown:
		events = append(events, s.editor.PointerDown(p))
	case PointerMove:
		if ev, ok := s.editor.PointerMove(p); ok {
			events = append(events, ev)
		}
	case PointerUp:
		s.editor.PointerUp()
	case PointerLeave:
		s.editor.PointerLeave()
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown pointer kind %q", msg.Kind)
	}
	return events, nil
}

func (s *Server) save(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.editor.Save()
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "save plan"))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
