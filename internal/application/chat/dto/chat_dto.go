package dto

import (
	"time"

	"tradepost/internal/domain/chat"
)

type MessageDTO struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	ReceiverID     uint      `json:"receiver_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	SentAt         time.Time `json:"sent_at"`
}

func MessageFromEntity(m *chat.Message) *MessageDTO {
	return &MessageDTO{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		SenderID:       m.SenderID(),
		ReceiverID:     m.ReceiverID(),
		Content:        m.Content(),
		IsRead:         m.IsRead(),
		SentAt:         m.SentAt(),
	}
}

func MessagesFromEntities(entities []*chat.Message) []*MessageDTO {
	dtos := make([]*MessageDTO, len(entities))
	for i, m := range entities {
		dtos[i] = MessageFromEntity(m)
	}
	return dtos
}

// ConversationDTO is the per-user view of a conversation: the other
// participant plus the caller's unread count within it.
type ConversationDTO struct {
	ID                uint      `json:"id"`
	CounterpartID     uint      `json:"counterpart_id"`
	LastMessageAt     time.Time `json:"last_message_at"`
	CreatedAt         time.Time `json:"created_at"`
	CounterpartOnline bool      `json:"counterpart_online"`
}

func ConversationFromEntity(c *chat.Conversation, viewerID uint, counterpartOnline bool) *ConversationDTO {
	return &ConversationDTO{
		ID:                c.ID(),
		CounterpartID:     c.Counterpart(viewerID),
		LastMessageAt:     c.LastMessageAt(),
		CreatedAt:         c.CreatedAt(),
		CounterpartOnline: counterpartOnline,
	}
}
