package usecases

import (
	"context"

	rtdto "tradepost/internal/application/realtime/dto"
)

// Presence is the delivery surface the dispatcher pushes through.
type Presence interface {
	PushToNotify(userID uint, msg *rtdto.Envelope) int
	IsOnline(userID uint) bool
}

// MessageUnreadCounter supplies the chat half of the unread summary.
type MessageUnreadCounter interface {
	CountUnreadByUserID(ctx context.Context, userID uint) (int64, error)
}

type DispatchExecutor interface {
	Execute(ctx context.Context, cmd DispatchCommand) (*DispatchResult, error)
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type GetUnreadCountExecutor interface {
	Execute(ctx context.Context, query GetUnreadCountQuery) (*GetUnreadCountResult, error)
}

type MarkNotificationAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkNotificationAsReadCommand) error
}

type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllAsReadCommand) error
}
