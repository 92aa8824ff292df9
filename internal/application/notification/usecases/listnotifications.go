package usecases

import (
	"context"

	"tradepost/internal/application/notification/dto"
	"tradepost/internal/domain/notification"
	"tradepost/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID uint
	Limit  int
	Offset int
}

type ListNotificationsResult struct {
	Notifications []*dto.NotificationDTO
	Total         int64
}

type ListNotificationsUseCase struct {
	notifRepo notification.Repository
	logger    logger.Interface
}

func NewListNotificationsUseCase(notifRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notifRepo: notifRepo,
		logger:    logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	entities, total, err := uc.notifRepo.ListByUserID(ctx, query.UserID, limit, query.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return &ListNotificationsResult{
		Notifications: dto.FromEntities(entities),
		Total:         total,
	}, nil
}
