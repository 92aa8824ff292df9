package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tradepost/internal/domain/order"
	"tradepost/internal/infrastructure/persistence/models"
	"tradepost/internal/shared/errors"
)

// ListingReaderImpl is the read-only listing lookup used when creating orders.
type ListingReaderImpl struct {
	db *gorm.DB
}

func NewListingReader(db *gorm.DB) order.ListingReader {
	return &ListingReaderImpl{db: db}
}

func (r *ListingReaderImpl) FindByID(ctx context.Context, id uint) (*order.Listing, error) {
	var model models.ListingModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("listing not found")
		}
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}

	return &order.Listing{
		ID:       model.ID,
		SellerID: model.SellerID,
		Title:    model.Title,
		Price:    model.Price,
		Active:   model.Active,
		Sold:     model.Sold,
	}, nil
}
