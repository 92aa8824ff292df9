package usecases

import (
	"context"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/logger"
)

type ListOrdersQuery struct {
	UserID uint
	Limit  int
	Offset int
}

type ListOrdersResult struct {
	Orders []*dto.OrderDTO
	Total  int64
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	orders, total, err := uc.orderRepo.ListByUserID(ctx, query.UserID, limit, query.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return &ListOrdersResult{
		Orders: dto.FromEntities(orders),
		Total:  total,
	}, nil
}
