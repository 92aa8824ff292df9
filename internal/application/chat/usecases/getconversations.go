package usecases

import (
	"context"

	"tradepost/internal/application/chat/dto"
	"tradepost/internal/domain/chat"
	"tradepost/internal/shared/logger"
)

type GetConversationsQuery struct {
	UserID uint
}

type GetConversationsUseCase struct {
	convRepo chat.ConversationRepository
	presence Presence
	logger   logger.Interface
}

func NewGetConversationsUseCase(
	convRepo chat.ConversationRepository,
	presence Presence,
	logger logger.Interface,
) *GetConversationsUseCase {
	return &GetConversationsUseCase{
		convRepo: convRepo,
		presence: presence,
		logger:   logger,
	}
}

func (uc *GetConversationsUseCase) Execute(ctx context.Context, query GetConversationsQuery) ([]*dto.ConversationDTO, error) {
	conversations, err := uc.convRepo.ListByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list conversations", "user_id", query.UserID, "error", err)
		return nil, err
	}

	dtos := make([]*dto.ConversationDTO, len(conversations))
	for i, conv := range conversations {
		counterpart := conv.Counterpart(query.UserID)
		dtos[i] = dto.ConversationFromEntity(conv, query.UserID, uc.presence.IsOnline(counterpart))
	}

	return dtos, nil
}
