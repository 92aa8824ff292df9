package usecases

import (
	"context"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

type GetOrderQuery struct {
	OrderID uint
	UserID  uint
	IsAdmin bool
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*dto.OrderDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	if !query.IsAdmin && !o.IsParticipant(query.UserID) {
		return nil, errors.NewForbiddenError("order belongs to other users")
	}

	return dto.FromEntity(o), nil
}
