package usecases

import (
	"context"
	"fmt"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/logger"
)

type CompleteOrderCommand struct {
	OrderID uint
	ActorID uint
}

// CompleteOrderUseCase marks a confirmed order as completed after the meetup.
// Either party may complete.
type CompleteOrderUseCase struct {
	orderRepo order.Repository
	notifier  OrderNotifier
	logger    logger.Interface
}

func NewCompleteOrderUseCase(
	orderRepo order.Repository,
	notifier OrderNotifier,
	logger logger.Interface,
) *CompleteOrderUseCase {
	return &CompleteOrderUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *CompleteOrderUseCase) Execute(ctx context.Context, cmd CompleteOrderCommand) (*dto.OrderDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	loadedVersion := o.Version()
	if err := o.Complete(cmd.ActorID); err != nil {
		return nil, mapGuardError(err)
	}

	if err := uc.orderRepo.Update(ctx, o, loadedVersion); err != nil {
		uc.logger.Errorw("failed to persist order completion", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Infow("order completed",
		"order_id", o.ID(),
		"number", o.Number(),
		"actor_id", cmd.ActorID,
	)

	uc.notifier.NotifyOrderEvent(ctx, o.Counterpart(cmd.ActorID),
		"Order completed",
		fmt.Sprintf("Order %s was marked as completed.", o.Number()),
		o.ID(),
	)

	return dto.FromEntity(o), nil
}
