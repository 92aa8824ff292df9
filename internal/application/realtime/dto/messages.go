// Package dto defines the websocket wire protocol: one JSON envelope for both
// directions, with a closed set of client operation types and server event types.
package dto

import "time"

// Envelope is the unified websocket message frame.
type Envelope struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
}

// NewEnvelope stamps an envelope with the current unix time.
func NewEnvelope(msgType string, data any) *Envelope {
	return &Envelope{
		Type:      msgType,
		Timestamp: time.Now().Unix(),
		Data:      data,
	}
}

// Client -> Server operation types.
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

// Server -> Client event types.
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

// SendMessageRequest is the payload of an OpSendMessage frame.
type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id"`
	Content     string `json:"content"`
}

// MarkMessagesReadRequest is the payload of an OpMarkMessagesRead frame.
type MarkMessagesReadRequest struct {
	ConversationID uint `json:"conversation_id"`
}

// GetMessagesRequest is the payload of an OpGetMessages frame.
type GetMessagesRequest struct {
	ConversationID uint `json:"conversation_id"`
	Limit          int  `json:"limit"`
	Offset         int  `json:"offset"`
}

// ConversationRef is the payload of join/leave frames.
type ConversationRef struct {
	ConversationID uint `json:"conversation_id"`
}

// TypingRequest is the payload of start/stop typing frames.
type TypingRequest struct {
	RecipientID uint `json:"recipient_id"`
}

// MessagePayload carries a persisted message in both delivery and ack events.
type MessagePayload struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	ReceiverID     uint      `json:"receiver_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	SentAt         time.Time `json:"sent_at"`
}

// NotificationPayload carries a persisted notification in push events.
type NotificationPayload struct {
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

// UnreadCountsPayload is the unread summary pushed after deliveries and reads.
type UnreadCountsPayload struct {
	Notifications int64 `json:"notifications"`
	Messages      int64 `json:"messages"`
}

// PresencePayload carries the subject of connect/disconnect/typing events.
type PresencePayload struct {
	UserID uint `json:"user_id"`
}

// ErrorPayload describes a failed operation, delivered only to the caller.
type ErrorPayload struct {
	Message string `json:"message"`
}
