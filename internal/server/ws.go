package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// handleWS streams events from one page. Each client message is answered
// with the resulting scene, in order.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied.
		s.log.Warn("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxBodySize)

	ctx := r.Context()
	if err := conn.WriteJSON(s.dispatch(ctx, message{Type: msgSync})); err != nil {
		return
	}

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if errors.Is(err, websocket.ErrReadLimit) || websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("websocket read: %v", err)
			}
			return
		}
		if err := conn.WriteJSON(s.dispatch(ctx, msg)); err != nil {
			s.log.Warn("websocket write: %v", err)
			return
		}
	}
}

// dispatch applies msg on the event loop and captures the scene afterwards.
func (s *Server) dispatch(ctx context.Context, msg message) reply {
	out := reply{Type: "scene"}
	err := s.do(ctx, func() error {
		err := s.apply(msg, &out)

		scene, serr := s.app.SceneJSON()
		if serr != nil {
			return serr
		}
		st := s.app.State()
		out.Scene = scene
		out.State = &st
		return err
	})
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

func (s *Server) apply(msg message, out *reply) error {
	switch msg.Type {
	case msgPointer:
		ev, err := msg.pointerEvent()
		if err != nil {
			return badRequest(err)
		}
		s.app.HandlePointer(ev)
	case msgKey:
		ev, err := msg.keyEvent()
		if err != nil {
			return err
		}
		out.Handled = s.app.HandleKey(ev)
	case msgMode:
		return s.app.SelectMode(msg.Mode)
	case msgAction:
		_, err := s.app.Perform(msg.Action)
		return err
	case msgColor:
		return s.app.SetColor(msg.Color)
	case msgSync:
	default:
		return fmt.Errorf("%w: unknown message type %q", errBadRequest, msg.Type)
	}
	return nil
}
