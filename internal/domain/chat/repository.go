package chat

import "context"

// ConversationRepository persists conversations, unique per participant pair.
type ConversationRepository interface {
	// FindOrCreateByPair returns the conversation for the pair, creating it
	// lazily on first contact.
	FindOrCreateByPair(ctx context.Context, userA, userB uint) (*Conversation, error)
	FindByID(ctx context.Context, id uint) (*Conversation, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Conversation, error)
	TouchLastMessage(ctx context.Context, id uint) error
}

// MessageRepository persists messages.
type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	ListByConversationID(ctx context.Context, conversationID uint, limit, offset int) ([]*Message, int64, error)
	// MarkReadByConversation marks every message addressed to readerID in the
	// conversation as read.
	MarkReadByConversation(ctx context.Context, conversationID, readerID uint) error
	CountUnreadByUserID(ctx context.Context, userID uint) (int64, error)
}
