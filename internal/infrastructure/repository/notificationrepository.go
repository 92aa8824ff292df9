package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tradepost/internal/domain/notification"
	"tradepost/internal/infrastructure/persistence/mappers"
	"tradepost/internal/infrastructure/persistence/models"
	"tradepost/internal/shared/errors"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepositoryImpl) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var modelList []*models.NotificationModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *NotificationRepositoryImpl) CountUnreadByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepositoryImpl) Update(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"is_read":    model.IsRead,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsReadByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}
