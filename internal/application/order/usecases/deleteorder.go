package usecases

import (
	"context"

	"tradepost/internal/domain/order"
	"tradepost/internal/shared/logger"
)

type DeleteOrderCommand struct {
	OrderID uint
	ActorID uint
}

// DeleteOrderUseCase hard-removes an order. Only a participant may delete,
// and only while the order is pending or cancelled; anything later stays as a
// permanent record.
type DeleteOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewDeleteOrderUseCase(orderRepo order.Repository, logger logger.Interface) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *DeleteOrderUseCase) Execute(ctx context.Context, cmd DeleteOrderCommand) error {
	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return err
	}

	if err := o.CanBeDeletedBy(cmd.ActorID); err != nil {
		return mapGuardError(err)
	}

	if err := uc.orderRepo.Delete(ctx, cmd.OrderID); err != nil {
		uc.logger.Errorw("failed to delete order", "order_id", cmd.OrderID, "error", err)
		return err
	}

	uc.logger.Infow("order deleted", "order_id", cmd.OrderID, "actor_id", cmd.ActorID)
	return nil
}
