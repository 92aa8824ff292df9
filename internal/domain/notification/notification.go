// Package notification contains the notification aggregate. Notifications are
// immutable once created except for the read flag, which only moves from
// unread to read.
package notification

import (
	"fmt"
	"time"

	vo "tradepost/internal/domain/notification/valueobjects"
)

// Related holds optional references to the entities a notification points at.
type Related struct {
	OrderID        *uint
	ConversationID *uint
	ListingID      *uint
}

type Notification struct {
	id        uint
	userID    uint
	notType   vo.NotificationType
	title     string
	message   string
	actionURL string
	related   Related
	isRead    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewNotification(
	userID uint,
	notType vo.NotificationType,
	title string,
	message string,
	actionURL string,
	related Related,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	now := time.Now().UTC()
	return &Notification{
		userID:    userID,
		notType:   notType,
		title:     title,
		message:   message,
		actionURL: actionURL,
		related:   related,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	notType vo.NotificationType,
	title string,
	message string,
	actionURL string,
	related Related,
	isRead bool,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		notType:   notType,
		title:     title,
		message:   message,
		actionURL: actionURL,
		related:   related,
		isRead:    isRead,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Type() vo.NotificationType {
	return n.notType
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) ActionURL() string {
	return n.actionURL
}

func (n *Notification) Related() Related {
	return n.related
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flips the read flag. The transition is one-directional; marking
// an already-read notification is a no-op.
func (n *Notification) MarkAsRead() {
	if n.isRead {
		return
	}
	n.isRead = true
	n.updatedAt = time.Now().UTC()
}
