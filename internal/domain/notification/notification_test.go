package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "tradepost/internal/domain/notification/valueobjects"
)

func TestNewNotification(t *testing.T) {
	orderID := uint(42)
	n, err := NewNotification(7, vo.NotificationTypeOrder, "Order confirmed",
		"Your order ORD-20260830-AB12CD34 was confirmed.", "/orders/42",
		Related{OrderID: &orderID})

	require.NoError(t, err)
	assert.Equal(t, uint(7), n.UserID())
	assert.Equal(t, vo.NotificationTypeOrder, n.Type())
	assert.False(t, n.IsRead())
	assert.Equal(t, &orderID, n.Related().OrderID)
}

func TestNewNotification_Validation(t *testing.T) {
	tests := []struct {
		name    string
		userID  uint
		notType vo.NotificationType
		title   string
		message string
	}{
		{"missing user", 0, vo.NotificationTypeSystem, "t", "m"},
		{"invalid type", 7, vo.NotificationType("bogus"), "t", "m"},
		{"empty title", 7, vo.NotificationTypeSystem, "", "m"},
		{"title too long", 7, vo.NotificationTypeSystem, strings.Repeat("t", 201), "m"},
		{"empty message", 7, vo.NotificationTypeSystem, "t", ""},
		{"message too long", 7, vo.NotificationTypeSystem, "t", strings.Repeat("m", 5001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification(tt.userID, tt.notType, tt.title, tt.message, "", Related{})
			assert.Error(t, err)
		})
	}
}

func TestNotification_MarkAsRead(t *testing.T) {
	n, err := NewNotification(7, vo.NotificationTypeMessage, "New message", "You have a new message.", "", Related{})
	require.NoError(t, err)

	n.MarkAsRead()
	assert.True(t, n.IsRead())
	firstUpdate := n.UpdatedAt()

	// Marking again is a no-op and does not bump updatedAt.
	n.MarkAsRead()
	assert.Equal(t, firstUpdate, n.UpdatedAt())
}
