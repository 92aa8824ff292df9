package usecases

import (
	"context"
	"fmt"

	rtdto "tradepost/internal/application/realtime/dto"
	"tradepost/internal/domain/notification"
	vo "tradepost/internal/domain/notification/valueobjects"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

type DispatchCommand struct {
	UserID         uint
	Type           string
	Title          string
	Message        string
	ActionURL      string
	OrderID        *uint
	ConversationID *uint
	ListingID      *uint
}

type DispatchResult struct {
	NotificationID uint
	Delivered      int
}

// DispatchUseCase persists a notification and then pushes it to the user's
// live connections. Persistence failure aborts the dispatch; push failure does
// not, since the stored row is picked up on the next fetch.
type DispatchUseCase struct {
	notifRepo notification.Repository
	presence  Presence
	counts    *PushUnreadCountsUseCase
	logger    logger.Interface
}

func NewDispatchUseCase(
	notifRepo notification.Repository,
	presence Presence,
	counts *PushUnreadCountsUseCase,
	logger logger.Interface,
) *DispatchUseCase {
	return &DispatchUseCase{
		notifRepo: notifRepo,
		presence:  presence,
		counts:    counts,
		logger:    logger,
	}
}

func (uc *DispatchUseCase) Execute(ctx context.Context, cmd DispatchCommand) (*DispatchResult, error) {
	notType, err := vo.NewNotificationType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	notif, err := notification.NewNotification(
		cmd.UserID,
		notType,
		cmd.Title,
		cmd.Message,
		cmd.ActionURL,
		notification.Related{
			OrderID:        cmd.OrderID,
			ConversationID: cmd.ConversationID,
			ListingID:      cmd.ListingID,
		},
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.notifRepo.Create(ctx, notif); err != nil {
		uc.logger.Errorw("failed to persist notification",
			"user_id", cmd.UserID,
			"type", cmd.Type,
			"error", err,
		)
		return nil, err
	}

	delivered := uc.presence.PushToNotify(cmd.UserID, rtdto.NewEnvelope(
		rtdto.EventReceiveNotification,
		rtdto.NotificationPayload{
			ID:             notif.ID(),
			Type:           notif.Type().String(),
			Title:          notif.Title(),
			Message:        notif.Message(),
			ActionURL:      notif.ActionURL(),
			OrderID:        notif.Related().OrderID,
			ConversationID: notif.Related().ConversationID,
			ListingID:      notif.Related().ListingID,
			IsRead:         notif.IsRead(),
			CreatedAt:      notif.CreatedAt(),
		},
	))

	// Gated on registered connections, not accepted frames: a dropped
	// notification frame must not also skip the counts refresh.
	if uc.presence.IsOnline(cmd.UserID) {
		uc.counts.Execute(ctx, cmd.UserID)
	}

	uc.logger.Infow("notification dispatched",
		"notification_id", notif.ID(),
		"user_id", cmd.UserID,
		"type", cmd.Type,
		"delivered", delivered,
	)

	return &DispatchResult{
		NotificationID: notif.ID(),
		Delivered:      delivered,
	}, nil
}

// NotifyOrderEvent dispatches an order lifecycle notification.
func (uc *DispatchUseCase) NotifyOrderEvent(ctx context.Context, userID uint, title, message string, orderID uint) {
	_, err := uc.Execute(ctx, DispatchCommand{
		UserID:    userID,
		Type:      vo.NotificationTypeOrder.String(),
		Title:     title,
		Message:   message,
		ActionURL: fmt.Sprintf("/orders/%d", orderID),
		OrderID:   &orderID,
	})
	if err != nil {
		uc.logger.Warnw("order notification dispatch failed",
			"user_id", userID,
			"order_id", orderID,
			"error", err,
		)
	}
}

// NotifyNewMessage dispatches an offline-recipient chat notification.
func (uc *DispatchUseCase) NotifyNewMessage(ctx context.Context, userID uint, senderName, preview string, conversationID uint) {
	_, err := uc.Execute(ctx, DispatchCommand{
		UserID:         userID,
		Type:           vo.NotificationTypeMessage.String(),
		Title:          fmt.Sprintf("New message from %s", senderName),
		Message:        preview,
		ActionURL:      fmt.Sprintf("/messages/%d", conversationID),
		ConversationID: &conversationID,
	})
	if err != nil {
		uc.logger.Warnw("message notification dispatch failed",
			"user_id", userID,
			"conversation_id", conversationID,
			"error", err,
		)
	}
}

// NotifySystem dispatches a platform announcement to one user.
func (uc *DispatchUseCase) NotifySystem(ctx context.Context, userID uint, title, message string) {
	_, err := uc.Execute(ctx, DispatchCommand{
		UserID:  userID,
		Type:    vo.NotificationTypeSystem.String(),
		Title:   title,
		Message: message,
	})
	if err != nil {
		uc.logger.Warnw("system notification dispatch failed",
			"user_id", userID,
			"error", err,
		)
	}
}
