package chat

import (
	"errors"
	"fmt"
	"time"
)

// MaxContentLength bounds a single chat message.
const MaxContentLength = 4000

var ErrEmptyContent = errors.New("message content cannot be empty")

// Message belongs to exactly one conversation. All fields except the read flag
// are immutable after creation; messages are never deleted.
type Message struct {
	id             uint
	conversationID uint
	senderID       uint
	receiverID     uint
	content        string
	isRead         bool
	sentAt         time.Time
}

func NewMessage(conversationID, senderID, receiverID uint, content string) (*Message, error) {
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if senderID == 0 || receiverID == 0 {
		return nil, fmt.Errorf("sender and receiver IDs are required")
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("sender and receiver cannot be the same user")
	}
	if len(content) == 0 {
		return nil, ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", MaxContentLength)
	}

	return &Message{
		conversationID: conversationID,
		senderID:       senderID,
		receiverID:     receiverID,
		content:        content,
		sentAt:         time.Now().UTC(),
	}, nil
}

func ReconstructMessage(id uint, conversationID, senderID, receiverID uint, content string, isRead bool, sentAt time.Time) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}

	return &Message{
		id:             id,
		conversationID: conversationID,
		senderID:       senderID,
		receiverID:     receiverID,
		content:        content,
		isRead:         isRead,
		sentAt:         sentAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) ConversationID() uint {
	return m.conversationID
}

func (m *Message) SenderID() uint {
	return m.senderID
}

func (m *Message) ReceiverID() uint {
	return m.receiverID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) IsRead() bool {
	return m.isRead
}

func (m *Message) SentAt() time.Time {
	return m.sentAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// MarkAsRead flips the read flag; one-directional.
func (m *Message) MarkAsRead() {
	m.isRead = true
}
