package usecases

import (
	"context"

	rtdto "tradepost/internal/application/realtime/dto"
	"tradepost/internal/domain/notification"
	"tradepost/internal/shared/logger"
)

// PushUnreadCountsUseCase pushes the user's current unread summary (unread
// notifications plus unread chat messages) to every live connection. Counting
// failures are logged, never surfaced: the summary is advisory and the next
// delivery refreshes it.
type PushUnreadCountsUseCase struct {
	notifRepo notification.Repository
	msgUnread MessageUnreadCounter
	presence  Presence
	logger    logger.Interface
}

func NewPushUnreadCountsUseCase(
	notifRepo notification.Repository,
	msgUnread MessageUnreadCounter,
	presence Presence,
	logger logger.Interface,
) *PushUnreadCountsUseCase {
	return &PushUnreadCountsUseCase{
		notifRepo: notifRepo,
		msgUnread: msgUnread,
		presence:  presence,
		logger:    logger,
	}
}

func (uc *PushUnreadCountsUseCase) Execute(ctx context.Context, userID uint) {
	notifCount, err := uc.notifRepo.CountUnreadByUserID(ctx, userID)
	if err != nil {
		uc.logger.Warnw("failed to count unread notifications", "user_id", userID, "error", err)
		return
	}

	msgCount, err := uc.msgUnread.CountUnreadByUserID(ctx, userID)
	if err != nil {
		uc.logger.Warnw("failed to count unread messages", "user_id", userID, "error", err)
		return
	}

	uc.presence.PushToNotify(userID, rtdto.NewEnvelope(rtdto.EventUpdateUnreadCounts, rtdto.UnreadCountsPayload{
		Notifications: notifCount,
		Messages:      msgCount,
	}))
}
