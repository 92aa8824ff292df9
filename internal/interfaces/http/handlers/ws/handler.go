// Package ws carries the realtime websocket endpoint: one authenticated
// connection per upgrade, a serial read pump dispatching client operations,
// and a write pump draining the connection's send queue.
package ws

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	chatuc "tradepost/internal/application/chat/usecases"
	rtdto "tradepost/internal/application/realtime/dto"
	"tradepost/internal/infrastructure/ratelimit"
	"tradepost/internal/infrastructure/services"
	"tradepost/internal/interfaces/http/middleware"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/goroutine"
	"tradepost/internal/shared/logger"
	"tradepost/internal/shared/utils"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second

	maxFrameSize = 65536
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Should be configured in production
	},
}

// Handler owns the websocket endpoint and the per-connection pumps.
type Handler struct {
	hub              *services.PresenceHub
	sendMessage      chatuc.SendMessageExecutor
	markMessagesRead chatuc.MarkMessagesReadExecutor
	getConversations chatuc.GetConversationsExecutor
	getMessages      chatuc.GetMessagesExecutor
	limiter          ratelimit.RateLimiter
	limits           ratelimit.RateLimitConfig
	sendBufferSize   int
	logger           logger.Interface
}

func NewHandler(
	hub *services.PresenceHub,
	sendMessage chatuc.SendMessageExecutor,
	markMessagesRead chatuc.MarkMessagesReadExecutor,
	getConversations chatuc.GetConversationsExecutor,
	getMessages chatuc.GetMessagesExecutor,
	limiter ratelimit.RateLimiter,
	limits ratelimit.RateLimitConfig,
	sendBufferSize int,
	log logger.Interface,
) *Handler {
	return &Handler{
		hub:              hub,
		sendMessage:      sendMessage,
		markMessagesRead: markMessagesRead,
		getConversations: getConversations,
		getMessages:      getMessages,
		limiter:          limiter,
		limits:           limits,
		sendBufferSize:   sendBufferSize,
		logger:           log,
	}
}

// Connect handles GET /ws: upgrades, registers the connection with the hub,
// and runs the pumps until the peer goes away.
func (h *Handler) Connect(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	wsConn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("failed to upgrade to websocket",
			"error", err,
			"user_id", userID,
			"ip", c.ClientIP(),
		)
		return
	}

	conn := services.NewConn(userID, h.sendBufferSize)
	cameOnline := h.hub.Register(conn)

	h.logger.Infow("websocket connected",
		"user_id", userID,
		"conn_id", conn.ID,
		"ip", c.ClientIP(),
	)

	if cameOnline {
		h.hub.Broadcast(rtdto.NewEnvelope(rtdto.EventUserConnected, rtdto.PresencePayload{UserID: userID}))
	}

	goroutine.SafeGo(h.logger, "ws-write-pump", func() {
		h.writePump(conn, wsConn)
	})
	h.readPump(c, conn, wsConn)
}

func (h *Handler) readPump(c *gin.Context, conn *services.Conn, wsConn *websocket.Conn) {
	defer func() {
		wentOffline := h.hub.Unregister(conn)
		conn.CloseSend()
		wsConn.Close()

		if wentOffline {
			h.hub.Broadcast(rtdto.NewEnvelope(rtdto.EventUserDisconnected, rtdto.PresencePayload{UserID: conn.UserID}))
		}
	}()

	wsConn.SetReadLimit(maxFrameSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Warnw("websocket read error",
					"error", err,
					"user_id", conn.UserID,
				)
			}
			break
		}

		var env rtdto.Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			h.pushError(conn, "malformed message frame")
			continue
		}

		h.dispatch(c, conn, &env)
	}
}

// dispatch handles one client operation. Operations run serially on the read
// pump, so a connection's commands apply in the order they were sent.
func (h *Handler) dispatch(c *gin.Context, conn *services.Conn, env *rtdto.Envelope) {
	ctx := c.Request.Context()

	switch env.Type {
	case rtdto.OpSendMessage:
		var req rtdto.SendMessageRequest
		if !h.decode(conn, env.Data, &req) {
			return
		}

		allowed, err := h.limiter.Allow(fmt.Sprintf("chat:send:%d", conn.UserID), h.limits)
		if err != nil {
			h.logger.Warnw("rate limiter unavailable", "error", err, "user_id", conn.UserID)
		} else if !allowed {
			h.pushError(conn, "message rate limit exceeded")
			return
		}

		_, err = h.sendMessage.Execute(ctx, chatuc.SendMessageCommand{
			SenderID:    conn.UserID,
			SenderName:  fmt.Sprintf("User #%d", conn.UserID),
			RecipientID: req.RecipientID,
			Content:     req.Content,
		})
		if err != nil {
			h.pushError(conn, userFacingMessage(err))
		}

	case rtdto.OpMarkMessagesRead:
		var req rtdto.MarkMessagesReadRequest
		if !h.decode(conn, env.Data, &req) {
			return
		}
		if err := h.markMessagesRead.Execute(ctx, chatuc.MarkMessagesReadCommand{
			ConversationID: req.ConversationID,
			ReaderID:       conn.UserID,
		}); err != nil {
			h.pushError(conn, userFacingMessage(err))
		}

	case rtdto.OpGetConversations:
		conversations, err := h.getConversations.Execute(ctx, chatuc.GetConversationsQuery{UserID: conn.UserID})
		if err != nil {
			h.pushError(conn, userFacingMessage(err))
			return
		}
		conn.Push(rtdto.NewEnvelope(rtdto.EventConversations, conversations))

	case rtdto.OpGetMessages:
		var req rtdto.GetMessagesRequest
		if !h.decode(conn, env.Data, &req) {
			return
		}
		result, err := h.getMessages.Execute(ctx, chatuc.GetMessagesQuery{
			ConversationID: req.ConversationID,
			UserID:         conn.UserID,
			Limit:          req.Limit,
			Offset:         req.Offset,
		})
		if err != nil {
			h.pushError(conn, userFacingMessage(err))
			return
		}
		conn.Push(rtdto.NewEnvelope(rtdto.EventMessages, result.Messages))

	case rtdto.OpJoinConversation:
		// Joining implies the client renders the history, so pending messages
		// addressed to this user are marked read.
		var req rtdto.ConversationRef
		if !h.decode(conn, env.Data, &req) {
			return
		}
		if err := h.markMessagesRead.Execute(ctx, chatuc.MarkMessagesReadCommand{
			ConversationID: req.ConversationID,
			ReaderID:       conn.UserID,
		}); err != nil {
			h.pushError(conn, userFacingMessage(err))
		}

	case rtdto.OpLeaveConversation:
		// Presence within a conversation is client state; nothing to do here.

	case rtdto.OpStartTyping:
		var req rtdto.TypingRequest
		if !h.decode(conn, env.Data, &req) {
			return
		}
		h.hub.PushToChat(req.RecipientID, rtdto.NewEnvelope(rtdto.EventUserTyping, rtdto.PresencePayload{UserID: conn.UserID}))

	case rtdto.OpStopTyping:
		var req rtdto.TypingRequest
		if !h.decode(conn, env.Data, &req) {
			return
		}
		h.hub.PushToChat(req.RecipientID, rtdto.NewEnvelope(rtdto.EventUserStoppedTyping, rtdto.PresencePayload{UserID: conn.UserID}))

	default:
		h.pushError(conn, fmt.Sprintf("unknown operation: %s", env.Type))
	}
}

func (h *Handler) writePump(conn *services.Conn, wsConn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case msg, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := wsConn.WriteJSON(msg); err != nil {
				h.logger.Warnw("failed to write to websocket",
					"error", err,
					"user_id", conn.UserID,
				)
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// decode re-marshals the envelope's data field into the typed payload.
func (h *Handler) decode(conn *services.Conn, data any, v any) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		h.pushError(conn, "malformed payload")
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		h.pushError(conn, "malformed payload")
		return false
	}
	return true
}

// pushError delivers an error event to the offending connection only.
func (h *Handler) pushError(conn *services.Conn, message string) {
	conn.Push(rtdto.NewEnvelope(rtdto.EventError, rtdto.ErrorPayload{Message: message}))
}

// userFacingMessage keeps internal failure details off the wire.
func userFacingMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "operation failed"
}
