package notification

import "context"

// Repository persists notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*Notification, int64, error)
	CountUnreadByUserID(ctx context.Context, userID uint) (int64, error)
	Update(ctx context.Context, n *Notification) error
	MarkAllAsReadByUserID(ctx context.Context, userID uint) error
}
