package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tradepost/internal/domain/order"
	"tradepost/internal/infrastructure/persistence/mappers"
	"tradepost/internal/infrastructure/persistence/models"
)

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewReviewRepository(db *gorm.DB) order.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *order.Review) error {
	model := r.mapper.ReviewToModel(review)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	if err := review.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set review ID: %w", err)
	}

	return nil
}

func (r *ReviewRepositoryImpl) ExistsByOrderAndReviewer(ctx context.Context, orderID, reviewerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReviewModel{}).
		Where("order_id = ? AND reviewer_id = ?", orderID, reviewerID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return count > 0, nil
}

func (r *ReviewRepositoryImpl) ListByOrderID(ctx context.Context, orderID uint) ([]*order.Review, error) {
	var modelList []models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]*order.Review, len(modelList))
	for i := range modelList {
		review, err := r.mapper.ReviewToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		reviews[i] = review
	}

	return reviews, nil
}
