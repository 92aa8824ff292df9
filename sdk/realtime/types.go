// Package realtime is the client SDK for the websocket endpoint: token
// lifecycle, the fixed-table reconnect policy, and a typed event stream.
package realtime

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope is the wire frame shared by both directions.
type Envelope struct {
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Client -> server operation types.
const (
	OpSendMessage       = "send_message"
	OpMarkMessagesRead  = "mark_messages_read"
	OpGetConversations  = "get_conversations"
	OpGetMessages       = "get_messages"
	OpJoinConversation  = "join_conversation"
	OpLeaveConversation = "leave_conversation"
	OpStartTyping       = "start_typing"
	OpStopTyping        = "stop_typing"
)

// Server -> client event types.
const (
	EventReceiveMessage      = "receive_message"
	EventMessageSent         = "message_sent"
	EventReceiveNotification = "receive_notification"
	EventUpdateUnreadCounts  = "update_unread_counts"
	EventUserConnected       = "user_connected"
	EventUserDisconnected    = "user_disconnected"
	EventUserTyping          = "user_typing"
	EventUserStoppedTyping   = "user_stopped_typing"
	EventConversations       = "conversations"
	EventMessages            = "messages"
	EventError               = "error"
)

// MessageEvent is the payload of receive_message and message_sent frames.
type MessageEvent struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	ReceiverID     uint      `json:"receiver_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	SentAt         time.Time `json:"sent_at"`
}

// NotificationEvent is the payload of receive_notification frames.
type NotificationEvent struct {
	ID             uint      `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	ActionURL      string    `json:"action_url,omitempty"`
	OrderID        *uint     `json:"order_id,omitempty"`
	ConversationID *uint     `json:"conversation_id,omitempty"`
	ListingID      *uint     `json:"listing_id,omitempty"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// UnreadCountsEvent is the payload of update_unread_counts frames.
type UnreadCountsEvent struct {
	Notifications int64 `json:"notifications"`
	Messages      int64 `json:"messages"`
}

// PresenceEvent is the payload of connect/disconnect/typing frames.
type PresenceEvent struct {
	UserID uint `json:"user_id"`
}

// ErrorEvent is the payload of error frames.
type ErrorEvent struct {
	Message string `json:"message"`
}

// DecodeData unmarshals the envelope payload into v.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("envelope %q has no data", e.Type)
	}
	return json.Unmarshal(e.Data, v)
}
