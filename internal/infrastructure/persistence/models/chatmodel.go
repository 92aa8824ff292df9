package models

import "time"

// ConversationModel stores the participant pair normalized as (low, high) so
// the unique index holds regardless of who initiated the conversation.
type ConversationModel struct {
	ID            uint `gorm:"primaryKey"`
	UserLowID     uint `gorm:"not null;uniqueIndex:idx_conversation_pair;index"`
	UserHighID    uint `gorm:"not null;uniqueIndex:idx_conversation_pair;index"`
	CreatedAt     time.Time
	LastMessageAt time.Time `gorm:"index"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

type MessageModel struct {
	ID             uint      `gorm:"primaryKey"`
	ConversationID uint      `gorm:"not null;index:idx_conversation_sent"`
	SenderID       uint      `gorm:"not null;index"`
	ReceiverID     uint      `gorm:"not null;index:idx_receiver_read"`
	Content        string    `gorm:"type:text;not null"`
	IsRead         bool      `gorm:"not null;default:false;index:idx_receiver_read"`
	SentAt         time.Time `gorm:"not null;index:idx_conversation_sent"`
}

func (MessageModel) TableName() string {
	return "messages"
}
