package usecases

import (
	"context"

	"tradepost/internal/domain/notification"
	"tradepost/internal/shared/logger"
)

type GetUnreadCountQuery struct {
	UserID uint
}

type GetUnreadCountResult struct {
	Notifications int64 `json:"notifications"`
	Messages      int64 `json:"messages"`
}

type GetUnreadCountUseCase struct {
	notifRepo notification.Repository
	msgUnread MessageUnreadCounter
	logger    logger.Interface
}

func NewGetUnreadCountUseCase(
	notifRepo notification.Repository,
	msgUnread MessageUnreadCounter,
	logger logger.Interface,
) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		notifRepo: notifRepo,
		msgUnread: msgUnread,
		logger:    logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, query GetUnreadCountQuery) (*GetUnreadCountResult, error) {
	notifCount, err := uc.notifRepo.CountUnreadByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", query.UserID, "error", err)
		return nil, err
	}

	msgCount, err := uc.msgUnread.CountUnreadByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread messages", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return &GetUnreadCountResult{
		Notifications: notifCount,
		Messages:      msgCount,
	}, nil
}
