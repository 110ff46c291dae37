package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/algoviz/internal/sanitizer"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// WebSocket message types.
const (
	MsgSessionCreated = "session_created"
	MsgVisualize      = "visualize"
	MsgStart          = "visualization_start"
	MsgAllSteps       = "visualization_all_steps"
	MsgStepsReady     = "visualization_steps_ready"
	MsgError          = "visualization_error"
	MsgPing           = "ping"
	MsgPong           = "pong"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSRequest is a client message on /ws.
type WSRequest struct {
	Type      string         `json:"type" validate:"required,max=32"`
	Algorithm string         `json:"algorithm,omitempty" validate:"max=64"`
	Data      map[string]any `json:"data,omitempty"`
}

// WSMessage is a server message on /ws. Only the fields relevant to Type are set.
type WSMessage struct {
	Type       string        `json:"type"`
	SessionID  string        `json:"sessionId,omitempty"`
	Algorithm  string        `json:"algorithm,omitempty"`
	Steps      []domain.Step `json:"steps,omitempty"`
	TotalSteps int           `json:"totalSteps,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// HandleWebSocket serves the /ws visualization protocol. Each connection owns
// a session, so linked list operations sent over it share one current list.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade the websocket", "err", err)
		return
	}
	defer ws.Close()
	ws.SetReadLimit(int64(sanitizer.MaxInputSize()))

	sessionID := uuid.NewString()
	log := s.logger.With("session_id", sessionID)
	log.Info("websocket client connected")

	send := func(msg WSMessage) bool {
		ws.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := ws.WriteJSON(msg); err != nil {
			log.Warn("failed to write websocket message", "type", msg.Type, "err", err)
			return false
		}
		return true
	}
	fail := func(err string) bool {
		return send(WSMessage{Type: MsgError, Error: err})
	}

	if !send(WSMessage{Type: MsgSessionCreated, SessionID: sessionID}) {
		return
	}

	limiter := rate.NewLimiter(rate.Limit(s.wsLimit), s.wsBurst)
	ctx := r.Context()
	defer func() {
		// A connection's list lives as long as the connection.
		if err := s.Engine.DeleteSession(context.WithoutCancel(ctx), sessionID); err != nil {
			log.Debug("websocket session cleanup failed", "err", err)
		}
	}()

	for {
		var req WSRequest
		if err := ws.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("websocket read failed", "err", err)
			} else {
				log.Info("websocket client disconnected")
			}
			return
		}

		if err := s.validate.Struct(req); err != nil {
			if !fail("invalid message: " + err.Error()) {
				return
			}
			continue
		}

		switch req.Type {
		case MsgPing:
			if !send(WSMessage{Type: MsgPong}) {
				return
			}
		case MsgVisualize:
			if s.wsLimit > 0 && !limiter.Allow() {
				if !fail("rate limit exceeded") {
					return
				}
				continue
			}
			if !s.visualizeWS(ctx, sessionID, req, send, fail) {
				return
			}
		default:
			if !fail("unknown message type: " + req.Type) {
				return
			}
		}
	}
}

func (s *Server) visualizeWS(ctx context.Context, sessionID string, req WSRequest, send func(WSMessage) bool, fail func(string) bool) bool {
	id := domain.AlgorithmID(strings.TrimSpace(req.Algorithm))
	if id == "" {
		return fail("algorithm is required")
	}
	if !send(WSMessage{Type: MsgStart, Algorithm: string(id)}) {
		return false
	}

	steps, err := s.Engine.GenerateSession(ctx, sessionID, id, req.Data)
	if err != nil {
		return fail(err.Error())
	}
	if !send(WSMessage{Type: MsgAllSteps, Algorithm: string(id), Steps: steps, TotalSteps: len(steps)}) {
		return false
	}
	return send(WSMessage{Type: MsgStepsReady, Algorithm: string(id), TotalSteps: len(steps)})
}
