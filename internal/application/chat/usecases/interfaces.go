package usecases

import (
	"context"

	"tradepost/internal/application/chat/dto"
	rtdto "tradepost/internal/application/realtime/dto"
)

// Presence is the slice of the connection registry chat delivery needs.
type Presence interface {
	PushToChat(userID uint, msg *rtdto.Envelope) bool
	IsOnline(userID uint) bool
}

// OfflineNotifier produces the stored notification for recipients with no
// live connection.
type OfflineNotifier interface {
	NotifyNewMessage(ctx context.Context, userID uint, senderName, preview string, conversationID uint)
}

// ContentSanitizer strips markup from message content before persistence.
type ContentSanitizer interface {
	CleanText(input string) string
}

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error)
}

type MarkMessagesReadExecutor interface {
	Execute(ctx context.Context, cmd MarkMessagesReadCommand) error
}

type GetConversationsExecutor interface {
	Execute(ctx context.Context, query GetConversationsQuery) ([]*dto.ConversationDTO, error)
}

type GetMessagesExecutor interface {
	Execute(ctx context.Context, query GetMessagesQuery) (*GetMessagesResult, error)
}
