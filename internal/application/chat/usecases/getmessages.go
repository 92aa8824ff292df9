package usecases

import (
	"context"

	"tradepost/internal/application/chat/dto"
	"tradepost/internal/domain/chat"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

type GetMessagesQuery struct {
	ConversationID uint
	UserID         uint
	Limit          int
	Offset         int
}

type GetMessagesResult struct {
	Messages []*dto.MessageDTO
	Total    int64
}

type GetMessagesUseCase struct {
	convRepo chat.ConversationRepository
	msgRepo  chat.MessageRepository
	logger   logger.Interface
}

func NewGetMessagesUseCase(
	convRepo chat.ConversationRepository,
	msgRepo chat.MessageRepository,
	logger logger.Interface,
) *GetMessagesUseCase {
	return &GetMessagesUseCase{
		convRepo: convRepo,
		msgRepo:  msgRepo,
		logger:   logger,
	}
}

func (uc *GetMessagesUseCase) Execute(ctx context.Context, query GetMessagesQuery) (*GetMessagesResult, error) {
	conv, err := uc.convRepo.FindByID(ctx, query.ConversationID)
	if err != nil {
		return nil, err
	}

	if !conv.HasParticipant(query.UserID) {
		return nil, errors.NewForbiddenError("not a participant of this conversation")
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	messages, total, err := uc.msgRepo.ListByConversationID(ctx, query.ConversationID, limit, query.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list messages",
			"conversation_id", query.ConversationID,
			"error", err,
		)
		return nil, err
	}

	return &GetMessagesResult{
		Messages: dto.MessagesFromEntities(messages),
		Total:    total,
	}, nil
}
