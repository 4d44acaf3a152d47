package server

import (
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

const (
	wsWriteWait = 10 * time.Second
	wsReadLimit = 4096
)

// wsReply is sent after every pointer message.
type wsReply struct {
	Events any    `json:"events"`
	Svg    string `json:"svg,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ws upgrades the connection and serves pointer messages until the client
// disconnects. A repaint is only sent when the message changed something.
func (s *Server) ws(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsReadLimit)
	s.logger.Debug("websocket connected", "remote", r.RemoteAddr)

	for {
		var msg PointerMsg
		if err := conn.ReadJSON(&msg); err != nil {
			if !closedNormally(err) {
				s.logger.Warn("websocket read failed", "err", err)
			}
			return
		}

		reply := s.handlePointer(r, msg)
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn("websocket write failed", "err", err)
			return
		}
	}
}

func (s *Server) handlePointer(r *http.Request, msg PointerMsg) wsReply {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.apply(msg)
	if err != nil {
		return wsReply{Events: []any{}, Error: errors.UserMessage(err)}
	}
	reply := wsReply{Events: events}
	if len(events) == 0 && msg.Kind != PointerUp && msg.Kind != PointerLeave {
		return reply
	}
	svg, err := s.frame(r, pipeline.FormatSVG)
	if err != nil {
		reply.Error = errors.UserMessage(err)
		return reply
	}
	reply.Svg = string(svg)
	return reply
}

func closedNormally(err error) bool {
	if stderrors.Is(err, net.ErrClosed) {
		return true
	}
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
