package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
	"github.com/Jack-Berry/UMC-Back/internal/realtime"
)

const (
	maxFrameSize = 4096
	pongWait     = 60 * time.Second
	joinTimeout  = 5 * time.Second
)

// Client frame types.
const (
	frameJoinRoom  = "joinRoom"
	frameLeaveRoom = "leaveRoom"
	framePing      = "ping"
)

type clientFrame struct {
	Type           string `json:"type"`
	ConversationID int64  `json:"conversationId"`
}

// RoomAuthorizer decides whether a user may subscribe to a conversation.
type RoomAuthorizer interface {
	CanJoin(ctx context.Context, conversationID, userID int64) error
}

// ConnectTokenVerifier resolves the user of a websocket connect token.
type ConnectTokenVerifier interface {
	VerifyConnectToken(ctx context.Context, token string) (int64, error)
}

type socketHandler struct {
	hub        *realtime.Hub
	rooms      RoomAuthorizer
	tokens     ConnectTokenVerifier
	upgrader   websocket.Upgrader
	sendBuffer int
	logger     *logger.Logger
}

func newSocketHandler(hub *realtime.Hub, rooms RoomAuthorizer, tokens ConnectTokenVerifier, opts Options, log *logger.Logger) *socketHandler {
	return &socketHandler{
		hub:    hub,
		rooms:  rooms,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(opts.AllowedOrigins),
		},
		sendBuffer: opts.SendBuffer,
		logger:     log,
	}
}

// originChecker accepts clients without an Origin header and browsers from
// an allowed origin.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}

func (s *socketHandler) handle(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing connect token"})
		return
	}
	userID, err := s.tokens.VerifyConnectToken(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid connect token"})
		return
	}

	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Debug("Socket service: upgrade failed", "user_id", userID, "error", err)
		return
	}

	conn := realtime.NewConnection(userID, ws, s.sendBuffer)
	s.hub.Register(conn)
	defer func() {
		conn.Close(websocket.CloseNormalClosure, "")
		s.hub.Unregister(conn)
	}()

	s.hub.Send(conn, model.Event{Type: model.EventConnected, ConnectionID: conn.ID, UserID: userID})

	ws.SetReadLimit(maxFrameSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("Socket service: read failed", "connection_id", conn.ID, "error", err)
			}
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))

		var frame clientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.hub.Send(conn, model.Event{Type: model.EventError, Code: "bad_request", Error: "malformed frame"})
			continue
		}
		s.dispatch(c.Request.Context(), conn, frame)
	}
}

func (s *socketHandler) dispatch(ctx context.Context, conn *realtime.Connection, frame clientFrame) {
	switch frame.Type {
	case frameJoinRoom:
		s.join(ctx, conn, frame.ConversationID)
	case frameLeaveRoom:
		s.hub.Unsubscribe(conn, frame.ConversationID)
		s.hub.Send(conn, model.Event{Type: model.EventLeft, ConversationID: frame.ConversationID})
	case framePing:
		s.hub.Send(conn, model.Event{Type: model.EventPong})
	default:
		s.hub.Send(conn, model.Event{Type: model.EventError, Code: "unsupported_type", Error: "unsupported frame type"})
	}
}

func (s *socketHandler) join(ctx context.Context, conn *realtime.Connection, conversationID int64) {
	ctx, cancel := context.WithTimeout(ctx, joinTimeout)
	defer cancel()

	if err := s.rooms.CanJoin(ctx, conversationID, conn.UserID); err != nil {
		if !errors.Is(err, model.ErrForbidden) && !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrValidation) {
			s.logger.Warn("Socket service: join check failed",
				"conversation_id", conversationID,
				"user_id", conn.UserID,
				"error", err)
		}
		_, msg := errorStatus(err)
		s.hub.Send(conn, model.Event{Type: model.EventError, ConversationID: conversationID, Code: eventCode(err), Error: msg})
		return
	}

	if !s.hub.Subscribe(conn, conversationID) {
		return
	}
	s.hub.Send(conn, model.Event{Type: model.EventJoined, ConversationID: conversationID})
}
