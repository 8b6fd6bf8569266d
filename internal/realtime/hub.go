package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

var _ model.Publisher = (*Hub)(nil)

const lastSeenTimeout = 2 * time.Second

// Hub tracks live connections, their users and the conversation rooms they
// are subscribed to. All methods are safe for concurrent use.
type Hub struct {
	mu        sync.RWMutex
	conns     map[string]*Connection            // connectionID -> connection
	userConns map[int64]map[string]*Connection  // userID -> connectionID -> connection
	rooms     map[int64]map[string]*Connection  // conversationID -> connectionID -> connection
	connRooms map[string]map[int64]struct{}     // connectionID -> conversationIDs

	lastSeen model.LastSeenStore
	metrics  *hubMetrics
	logger   *logger.Logger
	now      func() time.Time
}

// NewHub constructs an empty Hub. A nil lastSeen store keeps timestamps in
// memory; a nil registerer disables metrics.
func NewHub(lastSeen model.LastSeenStore, reg prometheus.Registerer, logger *logger.Logger) *Hub {
	if lastSeen == nil {
		lastSeen = NewMemoryLastSeen()
	}
	return &Hub{
		conns:     make(map[string]*Connection),
		userConns: make(map[int64]map[string]*Connection),
		rooms:     make(map[int64]map[string]*Connection),
		connRooms: make(map[string]map[int64]struct{}),
		lastSeen:  lastSeen,
		metrics:   newHubMetrics(reg),
		logger:    logger,
		now:       time.Now,
	}
}

// Register marks the connection live and starts its write loop.
func (h *Hub) Register(conn *Connection) {
	h.mu.Lock()
	h.conns[conn.ID] = conn
	h.connRooms[conn.ID] = make(map[int64]struct{})
	userSet := h.userConns[conn.UserID]
	first := userSet == nil
	if first {
		userSet = make(map[string]*Connection)
		h.userConns[conn.UserID] = userSet
	}
	userSet[conn.ID] = conn
	h.mu.Unlock()

	h.metrics.connectionOpened(first)
	conn.Start()

	h.logger.Debug("Realtime hub: connection registered", "connection_id", conn.ID, "user_id", conn.UserID)
}

// Unregister removes the connection from presence and every room. When it
// was the user's last connection the user's last-seen time is recorded.
func (h *Hub) Unregister(conn *Connection) {
	h.mu.Lock()
	if _, ok := h.conns[conn.ID]; !ok {
		h.mu.Unlock()
		return
	}
	h.detachLocked(conn)
	_, stillOnline := h.userConns[conn.UserID]
	rooms := len(h.rooms)
	h.mu.Unlock()

	h.metrics.connectionClosed(!stillOnline)
	h.metrics.setRooms(rooms)

	if !stillOnline {
		ctx, cancel := context.WithTimeout(context.Background(), lastSeenTimeout)
		defer cancel()
		if err := h.lastSeen.Record(ctx, conn.UserID, h.now()); err != nil {
			h.logger.Warn("Realtime hub: failed to record last seen", "user_id", conn.UserID, "error", err)
		}
	}

	h.logger.Debug("Realtime hub: connection unregistered", "connection_id", conn.ID, "user_id", conn.UserID)
}

// Subscribe adds a registered connection to the conversation room.
func (h *Hub) Subscribe(conn *Connection, conversationID int64) bool {
	h.mu.Lock()
	if _, ok := h.conns[conn.ID]; !ok {
		h.mu.Unlock()
		return false
	}

	room := h.rooms[conversationID]
	if room == nil {
		room = make(map[string]*Connection)
		h.rooms[conversationID] = room
	}
	room[conn.ID] = conn
	h.connRooms[conn.ID][conversationID] = struct{}{}
	rooms := len(h.rooms)
	h.mu.Unlock()

	h.metrics.setRooms(rooms)
	return true
}

// Unsubscribe removes the connection from the conversation room.
func (h *Hub) Unsubscribe(conn *Connection, conversationID int64) {
	h.mu.Lock()
	h.leaveLocked(conversationID, conn.ID)
	rooms := len(h.rooms)
	h.mu.Unlock()

	h.metrics.setRooms(rooms)
}

// Publish delivers the event to every subscriber of the conversation.
// Connections that cannot accept the event are closed and forgotten.
func (h *Hub) Publish(conversationID int64, event model.Event) int {
	h.mu.RLock()
	targets := snapshot(h.rooms[conversationID])
	h.mu.RUnlock()

	return h.deliver(targets, event)
}

// NotifyUser delivers the event to every live connection of the user.
func (h *Hub) NotifyUser(userID int64, event model.Event) int {
	h.mu.RLock()
	targets := snapshot(h.userConns[userID])
	h.mu.RUnlock()

	return h.deliver(targets, event)
}

// Send delivers the event to a single connection.
func (h *Hub) Send(conn *Connection, event model.Event) bool {
	return h.deliver([]*Connection{conn}, event) == 1
}

// Online reports whether the user holds at least one live connection.
func (h *Hub) Online(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.userConns[userID]) > 0
}

// LastSeen returns when the user's last connection closed.
func (h *Hub) LastSeen(ctx context.Context, userID int64) (time.Time, bool, error) {
	return h.lastSeen.Get(ctx, userID)
}

// Subscribers returns the number of connections subscribed to the
// conversation.
func (h *Hub) Subscribers(conversationID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[conversationID])
}

// Close terminates all tracked connections and clears hub state.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := make([]*Connection, 0, len(h.conns))
	for _, conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.Close(websocket.CloseGoingAway, "server shutdown")
		h.Unregister(conn)
	}
}

func (h *Hub) deliver(targets []*Connection, event model.Event) int {
	if len(targets) == 0 {
		h.metrics.recordPublish(event.Type, 0, 0)
		return 0
	}

	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Realtime hub: failed to encode event", "type", event.Type, "error", err)
		return 0
	}

	delivered, dropped := 0, 0
	for _, conn := range targets {
		if err := conn.Send(payload); err != nil {
			dropped++
			h.logger.Debug("Realtime hub: dropped delivery", "connection_id", conn.ID, "user_id", conn.UserID, "error", err)
			h.Unregister(conn)
			continue
		}
		delivered++
	}

	h.metrics.recordPublish(event.Type, delivered, dropped)
	return delivered
}

func (h *Hub) detachLocked(conn *Connection) {
	delete(h.conns, conn.ID)

	if userSet, ok := h.userConns[conn.UserID]; ok {
		delete(userSet, conn.ID)
		if len(userSet) == 0 {
			delete(h.userConns, conn.UserID)
		}
	}

	for conversationID := range h.connRooms[conn.ID] {
		h.leaveLocked(conversationID, conn.ID)
	}
	delete(h.connRooms, conn.ID)
}

func (h *Hub) leaveLocked(conversationID int64, connectionID string) {
	room := h.rooms[conversationID]
	if room == nil {
		return
	}
	delete(room, connectionID)
	if len(room) == 0 {
		delete(h.rooms, conversationID)
	}
	if memberships, ok := h.connRooms[connectionID]; ok {
		delete(memberships, conversationID)
	}
}

func snapshot(set map[string]*Connection) []*Connection {
	if len(set) == 0 {
		return nil
	}
	out := make([]*Connection, 0, len(set))
	for _, conn := range set {
		out = append(out, conn)
	}
	return out
}
