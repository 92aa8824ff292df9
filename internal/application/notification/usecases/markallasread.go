package usecases

import (
	"context"

	"tradepost/internal/domain/notification"
	"tradepost/internal/shared/logger"
)

type MarkAllAsReadCommand struct {
	UserID uint
}

type MarkAllAsReadUseCase struct {
	notifRepo notification.Repository
	counts    *PushUnreadCountsUseCase
	logger    logger.Interface
}

func NewMarkAllAsReadUseCase(
	notifRepo notification.Repository,
	counts *PushUnreadCountsUseCase,
	logger logger.Interface,
) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		notifRepo: notifRepo,
		counts:    counts,
		logger:    logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, cmd MarkAllAsReadCommand) error {
	if err := uc.notifRepo.MarkAllAsReadByUserID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.counts.Execute(ctx, cmd.UserID)
	return nil
}
