package usecases

import (
	"context"

	"tradepost/internal/domain/chat"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

type MarkMessagesReadCommand struct {
	ConversationID uint
	ReaderID       uint
}

// UnreadPusher refreshes the caller's unread summary after a bulk read.
type UnreadPusher interface {
	Execute(ctx context.Context, userID uint)
}

type MarkMessagesReadUseCase struct {
	convRepo chat.ConversationRepository
	msgRepo  chat.MessageRepository
	counts   UnreadPusher
	logger   logger.Interface
}

func NewMarkMessagesReadUseCase(
	convRepo chat.ConversationRepository,
	msgRepo chat.MessageRepository,
	counts UnreadPusher,
	logger logger.Interface,
) *MarkMessagesReadUseCase {
	return &MarkMessagesReadUseCase{
		convRepo: convRepo,
		msgRepo:  msgRepo,
		counts:   counts,
		logger:   logger,
	}
}

func (uc *MarkMessagesReadUseCase) Execute(ctx context.Context, cmd MarkMessagesReadCommand) error {
	conv, err := uc.convRepo.FindByID(ctx, cmd.ConversationID)
	if err != nil {
		return err
	}

	if !conv.HasParticipant(cmd.ReaderID) {
		return errors.NewForbiddenError("not a participant of this conversation")
	}

	if err := uc.msgRepo.MarkReadByConversation(ctx, cmd.ConversationID, cmd.ReaderID); err != nil {
		uc.logger.Errorw("failed to mark messages as read",
			"conversation_id", cmd.ConversationID,
			"reader_id", cmd.ReaderID,
			"error", err,
		)
		return err
	}

	uc.counts.Execute(ctx, cmd.ReaderID)
	return nil
}
