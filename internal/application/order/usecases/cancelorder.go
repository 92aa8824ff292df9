package usecases

import (
	"context"
	"fmt"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/logger"
)

type CancelOrderCommand struct {
	OrderID uint
	ActorID uint
	Reason  string
}

// CancelOrderUseCase cancels a pending order. Either party may cancel; a
// confirmed order can only leave through Complete or the seller's Reject.
type CancelOrderUseCase struct {
	orderRepo order.Repository
	notifier  OrderNotifier
	logger    logger.Interface
}

func NewCancelOrderUseCase(
	orderRepo order.Repository,
	notifier OrderNotifier,
	logger logger.Interface,
) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *CancelOrderUseCase) Execute(ctx context.Context, cmd CancelOrderCommand) (*dto.OrderDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	loadedVersion := o.Version()
	if err := o.Cancel(cmd.ActorID, cmd.Reason); err != nil {
		return nil, mapGuardError(err)
	}

	if err := uc.orderRepo.Update(ctx, o, loadedVersion); err != nil {
		uc.logger.Errorw("failed to persist order cancellation", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Infow("order cancelled",
		"order_id", o.ID(),
		"number", o.Number(),
		"actor_id", cmd.ActorID,
	)

	uc.notifier.NotifyOrderEvent(ctx, o.Counterpart(cmd.ActorID),
		"Order cancelled",
		fmt.Sprintf("Order %s was cancelled.", o.Number()),
		o.ID(),
	)

	return dto.FromEntity(o), nil
}
