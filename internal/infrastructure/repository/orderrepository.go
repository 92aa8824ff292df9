package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tradepost/internal/domain/order"
	"tradepost/internal/infrastructure/persistence/mappers"
	"tradepost/internal/infrastructure/persistence/models"
	"tradepost/internal/shared/errors"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) order.Repository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := o.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set order ID: %w", err)
	}

	return nil
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrderRepositoryImpl) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	var model models.OrderModel

	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order by number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrderRepositoryImpl) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("buyer_id = ? OR seller_id = ?", userID, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var modelList []models.OrderModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, len(modelList))
	for i := range modelList {
		o, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		orders[i] = o
	}

	return orders, total, nil
}

// Update persists the aggregate with an optimistic concurrency check: the row
// is only written when its stored version still equals expectedVersion. A lost
// race surfaces as a state conflict, never as partial state.
func (r *OrderRepositoryImpl) Update(ctx context.Context, o *order.Order, expectedVersion int) error {
	model := r.mapper.ToModel(o)

	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewStateConflictError("order was modified concurrently")
	}

	return nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.OrderModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("order not found")
	}
	return nil
}
