package mappers

import (
	"encoding/json"
	"fmt"

	"tradepost/internal/domain/notification"
	vo "tradepost/internal/domain/notification/valueobjects"
	"tradepost/internal/infrastructure/persistence/models"
)

// relatedJSON is the persisted shape of notification.Related.
type relatedJSON struct {
	OrderID        *uint `json:"order_id,omitempty"`
	ConversationID *uint `json:"conversation_id,omitempty"`
	ListingID      *uint `json:"listing_id,omitempty"`
}

// NotificationMapper handles the conversion between notification domain entities and persistence models.
type NotificationMapper interface {
	ToModel(n *notification.Notification) (*models.NotificationModel, error)
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
	ToDomainList(modelList []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	related := n.Related()
	relatedRaw, err := json.Marshal(relatedJSON{
		OrderID:        related.OrderID,
		ConversationID: related.ConversationID,
		ListingID:      related.ListingID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal related references: %w", err)
	}

	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		ActionURL: n.ActionURL(),
		Related:   relatedRaw,
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	notType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, err
	}

	var related relatedJSON
	if len(model.Related) > 0 {
		if err := json.Unmarshal(model.Related, &related); err != nil {
			return nil, fmt.Errorf("failed to unmarshal related references: %w", err)
		}
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notType,
		model.Title,
		model.Message,
		model.ActionURL,
		notification.Related{
			OrderID:        related.OrderID,
			ConversationID: related.ConversationID,
			ListingID:      related.ListingID,
		},
		model.IsRead,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *NotificationMapperImpl) ToDomainList(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, len(modelList))
	for i, model := range modelList {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities[i] = entity
	}
	return entities, nil
}
