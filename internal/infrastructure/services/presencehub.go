// Package services provides infrastructure services.
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tradepost/internal/application/realtime/dto"
	"tradepost/internal/shared/logger"
)

// PresenceHub tracks which users currently have a live websocket connection.
//
// The chat path keeps at most one connection per user: registering a new
// connection silently evicts the previous chat mapping, so chat delivery always
// targets the most recently established connection. The notification path keeps
// the full set of a user's connections and fans out to all of them. The
// asymmetry mirrors upstream behavior and is intentional (see DESIGN.md).
type PresenceHub struct {
	chatMu sync.RWMutex
	chat   map[uint]*Conn

	notifMu sync.RWMutex
	notif   map[uint]map[*Conn]struct{}

	onUserOnline  func(userID uint)
	onUserOffline func(userID uint)

	logger logger.Interface
}

// Conn represents one live, authenticated websocket connection. The transport
// layer owns it for its lifetime; the hub only holds references.
type Conn struct {
	ID          string
	UserID      uint
	Send        chan *dto.Envelope
	ConnectedAt time.Time

	mu     sync.Mutex
	closed bool
}

// NewConn creates a connection handle with a buffered send queue.
func NewConn(userID uint, sendBuffer int) *Conn {
	if sendBuffer <= 0 {
		sendBuffer = 256
	}
	return &Conn{
		ID:          uuid.NewString(),
		UserID:      userID,
		Send:        make(chan *dto.Envelope, sendBuffer),
		ConnectedAt: time.Now(),
	}
}

// Push queues an envelope for the write pump. A full queue drops the frame
// rather than blocking the caller; a closed connection is a silent no-op.
func (c *Conn) Push(msg *dto.Envelope) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}

// CloseSend marks the connection closed and releases the write pump.
// Safe to call more than once.
func (c *Conn) CloseSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

// NewPresenceHub creates an empty hub.
func NewPresenceHub(log logger.Interface) *PresenceHub {
	return &PresenceHub{
		chat:   make(map[uint]*Conn),
		notif:  make(map[uint]map[*Conn]struct{}),
		logger: log,
	}
}

// SetOnUserOnline sets the callback fired when a user's first connection registers.
func (h *PresenceHub) SetOnUserOnline(fn func(userID uint)) {
	h.onUserOnline = fn
}

// SetOnUserOffline sets the callback fired when a user's last connection unregisters.
func (h *PresenceHub) SetOnUserOffline(fn func(userID uint)) {
	h.onUserOffline = fn
}

// Register adds conn to both the chat and notification registries.
// Returns true if this made the user transition from offline to online.
func (h *PresenceHub) Register(conn *Conn) bool {
	h.RegisterChat(conn.UserID, conn)
	first := h.RegisterNotify(conn.UserID, conn)

	h.logger.Infow("websocket connection registered",
		"user_id", conn.UserID,
		"conn_id", conn.ID,
	)

	if first && h.onUserOnline != nil {
		go h.onUserOnline(conn.UserID)
	}
	return first
}

// Unregister removes conn from both registries.
// Returns true if this made the user transition from online to offline.
func (h *PresenceHub) Unregister(conn *Conn) bool {
	h.UnregisterChat(conn.UserID, conn)
	last := h.UnregisterNotify(conn.UserID, conn)

	h.logger.Infow("websocket connection unregistered",
		"user_id", conn.UserID,
		"conn_id", conn.ID,
	)

	if last && h.onUserOffline != nil {
		go h.onUserOffline(conn.UserID)
	}
	return last
}

// RegisterChat maps the user to conn for chat delivery, replacing any previous
// mapping (last writer wins). The evicted connection stays registered for
// notifications; only its chat role ends.
func (h *PresenceHub) RegisterChat(userID uint, conn *Conn) {
	h.chatMu.Lock()
	defer h.chatMu.Unlock()

	if existing, ok := h.chat[userID]; ok && existing != conn {
		h.logger.Debugw("chat connection evicted by newer registration",
			"user_id", userID,
			"evicted_conn_id", existing.ID,
			"conn_id", conn.ID,
		)
	}
	h.chat[userID] = conn
}

// UnregisterChat removes the chat mapping if it still points at conn.
// A stale unregister (after eviction) is a no-op.
func (h *PresenceHub) UnregisterChat(userID uint, conn *Conn) {
	h.chatMu.Lock()
	defer h.chatMu.Unlock()

	if existing, ok := h.chat[userID]; ok && existing == conn {
		delete(h.chat, userID)
	}
}

// LookupChat returns the user's current chat connection, if any.
func (h *PresenceHub) LookupChat(userID uint) (*Conn, bool) {
	h.chatMu.RLock()
	defer h.chatMu.RUnlock()

	conn, ok := h.chat[userID]
	return conn, ok
}

// RegisterNotify adds conn to the user's notification set.
// Returns true when this is the user's first registered connection.
func (h *PresenceHub) RegisterNotify(userID uint, conn *Conn) bool {
	h.notifMu.Lock()
	defer h.notifMu.Unlock()

	set, ok := h.notif[userID]
	if !ok {
		set = make(map[*Conn]struct{})
		h.notif[userID] = set
	}
	first := len(set) == 0
	set[conn] = struct{}{}
	return first
}

// UnregisterNotify removes conn from the user's notification set; no-op if
// absent, which absorbs double-close races.
// Returns true when the user has no connections left.
func (h *PresenceHub) UnregisterNotify(userID uint, conn *Conn) bool {
	h.notifMu.Lock()
	defer h.notifMu.Unlock()

	set, ok := h.notif[userID]
	if !ok {
		return false
	}

	if _, present := set[conn]; !present {
		return false
	}

	delete(set, conn)
	if len(set) == 0 {
		delete(h.notif, userID)
		return true
	}
	return false
}

// LookupNotify returns a snapshot of every connection registered for the user.
func (h *PresenceHub) LookupNotify(userID uint) []*Conn {
	h.notifMu.RLock()
	defer h.notifMu.RUnlock()

	set, ok := h.notif[userID]
	if !ok {
		return nil
	}

	conns := make([]*Conn, 0, len(set))
	for conn := range set {
		conns = append(conns, conn)
	}
	return conns
}

// PushToChat delivers one envelope to the user's current chat connection.
// Returns false when the user is offline or the queue is full.
func (h *PresenceHub) PushToChat(userID uint, msg *dto.Envelope) bool {
	conn, ok := h.LookupChat(userID)
	if !ok {
		return false
	}

	if !conn.Push(msg) {
		h.logger.Warnw("chat push dropped",
			"user_id", userID,
			"conn_id", conn.ID,
			"type", msg.Type,
		)
		return false
	}
	return true
}

// PushToNotify fans one envelope out to every connection registered for the
// user. Returns the number of connections that accepted the frame.
func (h *PresenceHub) PushToNotify(userID uint, msg *dto.Envelope) int {
	delivered := 0
	for _, conn := range h.LookupNotify(userID) {
		if conn.Push(msg) {
			delivered++
		} else {
			h.logger.Warnw("notification push dropped",
				"user_id", userID,
				"conn_id", conn.ID,
				"type", msg.Type,
			)
		}
	}
	return delivered
}

// IsOnline reports whether the user has at least one registered connection.
func (h *PresenceHub) IsOnline(userID uint) bool {
	h.notifMu.RLock()
	defer h.notifMu.RUnlock()

	set, ok := h.notif[userID]
	return ok && len(set) > 0
}

// OnlineUserIDs returns the ids of all users with at least one connection.
func (h *PresenceHub) OnlineUserIDs() []uint {
	h.notifMu.RLock()
	defer h.notifMu.RUnlock()

	ids := make([]uint, 0, len(h.notif))
	for id := range h.notif {
		ids = append(ids, id)
	}
	return ids
}

// Broadcast pushes an envelope to every registered connection of every user.
// Used for presence events; delivery is best effort.
func (h *PresenceHub) Broadcast(msg *dto.Envelope) {
	h.notifMu.RLock()
	conns := make([]*Conn, 0, len(h.notif))
	for _, set := range h.notif {
		for conn := range set {
			conns = append(conns, conn)
		}
	}
	h.notifMu.RUnlock()

	for _, conn := range conns {
		conn.Push(msg)
	}
}
