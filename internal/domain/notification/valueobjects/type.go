package valueobjects

import "fmt"

// NotificationType classifies what produced a notification.
type NotificationType string

const (
	NotificationTypeOrder   NotificationType = "order"
	NotificationTypeMessage NotificationType = "message"
	NotificationTypeSystem  NotificationType = "system"
)

var validNotificationTypes = map[NotificationType]bool{
	NotificationTypeOrder:   true,
	NotificationTypeMessage: true,
	NotificationTypeSystem:  true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
