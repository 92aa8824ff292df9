package dto

import (
	"time"

	"tradepost/internal/domain/notification"
)

type NotificationDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	ActionURL      string    `json:"action_url,omitempty"`
	OrderID        *uint     `json:"order_id,omitempty"`
	ConversationID *uint     `json:"conversation_id,omitempty"`
	ListingID      *uint     `json:"listing_id,omitempty"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromEntity(n *notification.Notification) *NotificationDTO {
	related := n.Related()
	return &NotificationDTO{
		ID:             n.ID(),
		UserID:         n.UserID(),
		Type:           n.Type().String(),
		Title:          n.Title(),
		Message:        n.Message(),
		ActionURL:      n.ActionURL(),
		OrderID:        related.OrderID,
		ConversationID: related.ConversationID,
		ListingID:      related.ListingID,
		IsRead:         n.IsRead(),
		CreatedAt:      n.CreatedAt(),
	}
}

func FromEntities(entities []*notification.Notification) []*NotificationDTO {
	dtos := make([]*NotificationDTO, len(entities))
	for i, n := range entities {
		dtos[i] = FromEntity(n)
	}
	return dtos
}
