package usecases

import (
	"context"

	"tradepost/internal/application/chat/dto"
	rtdto "tradepost/internal/application/realtime/dto"
	"tradepost/internal/domain/chat"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

const messagePreviewLimit = 120

type SendMessageCommand struct {
	SenderID    uint
	SenderName  string
	RecipientID uint
	Content     string
}

// SendMessageUseCase is the persist-then-deliver pipeline for one chat
// message. Persistence failure aborts the whole operation; delivery failure
// does not, since the stored row is the source of truth and history fetches
// recover it. The sender always gets an ack with the persisted message,
// whether or not the recipient was reachable.
type SendMessageUseCase struct {
	convRepo  chat.ConversationRepository
	msgRepo   chat.MessageRepository
	presence  Presence
	notifier  OfflineNotifier
	sanitizer ContentSanitizer
	logger    logger.Interface
}

func NewSendMessageUseCase(
	convRepo chat.ConversationRepository,
	msgRepo chat.MessageRepository,
	presence Presence,
	notifier OfflineNotifier,
	sanitizer ContentSanitizer,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		convRepo:  convRepo,
		msgRepo:   msgRepo,
		presence:  presence,
		notifier:  notifier,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error) {
	if cmd.RecipientID == 0 {
		return nil, errors.NewValidationError("recipient is required")
	}
	if cmd.RecipientID == cmd.SenderID {
		return nil, errors.NewValidationError("cannot send a message to yourself")
	}

	content := uc.sanitizer.CleanText(cmd.Content)
	if len(content) == 0 {
		return nil, errors.NewValidationError("message content cannot be empty")
	}

	conv, err := uc.convRepo.FindOrCreateByPair(ctx, cmd.SenderID, cmd.RecipientID)
	if err != nil {
		uc.logger.Errorw("failed to resolve conversation",
			"sender_id", cmd.SenderID,
			"recipient_id", cmd.RecipientID,
			"error", err,
		)
		return nil, err
	}

	msg, err := chat.NewMessage(conv.ID(), cmd.SenderID, cmd.RecipientID, content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.msgRepo.Create(ctx, msg); err != nil {
		uc.logger.Errorw("failed to persist message",
			"conversation_id", conv.ID(),
			"sender_id", cmd.SenderID,
			"error", err,
		)
		return nil, err
	}

	if err := uc.convRepo.TouchLastMessage(ctx, conv.ID()); err != nil {
		uc.logger.Warnw("failed to touch conversation", "conversation_id", conv.ID(), "error", err)
	}

	payload := rtdto.MessagePayload{
		ID:             msg.ID(),
		ConversationID: msg.ConversationID(),
		SenderID:       msg.SenderID(),
		ReceiverID:     msg.ReceiverID(),
		Content:        msg.Content(),
		IsRead:         msg.IsRead(),
		SentAt:         msg.SentAt(),
	}

	if delivered := uc.presence.PushToChat(cmd.RecipientID, rtdto.NewEnvelope(rtdto.EventReceiveMessage, payload)); !delivered {
		uc.notifier.NotifyNewMessage(ctx, cmd.RecipientID, cmd.SenderName, preview(content), conv.ID())
	}

	// Ack goes to the sender's chat connection regardless of recipient state.
	uc.presence.PushToChat(cmd.SenderID, rtdto.NewEnvelope(rtdto.EventMessageSent, payload))

	return dto.MessageFromEntity(msg), nil
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= messagePreviewLimit {
		return content
	}
	return string(runes[:messagePreviewLimit]) + "..."
}
