package usecases

import (
	"context"

	"tradepost/internal/domain/notification"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

type MarkNotificationAsReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkNotificationAsReadUseCase struct {
	notifRepo notification.Repository
	counts    *PushUnreadCountsUseCase
	logger    logger.Interface
}

func NewMarkNotificationAsReadUseCase(
	notifRepo notification.Repository,
	counts *PushUnreadCountsUseCase,
	logger logger.Interface,
) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		notifRepo: notifRepo,
		counts:    counts,
		logger:    logger,
	}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, cmd MarkNotificationAsReadCommand) error {
	notif, err := uc.notifRepo.FindByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}

	if notif.UserID() != cmd.UserID {
		return errors.NewForbiddenError("notification belongs to another user")
	}

	if notif.IsRead() {
		return nil
	}

	notif.MarkAsRead()
	if err := uc.notifRepo.Update(ctx, notif); err != nil {
		uc.logger.Errorw("failed to mark notification as read",
			"notification_id", cmd.NotificationID,
			"error", err,
		)
		return err
	}

	uc.counts.Execute(ctx, cmd.UserID)
	return nil
}
