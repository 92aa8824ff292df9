package usecases

import (
	"context"
	"fmt"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/logger"
)

type ConfirmOrderCommand struct {
	OrderID uint
	ActorID uint
}

// ConfirmOrderUseCase moves a pending order to confirmed. Only the seller may
// confirm; the stored version at load time guards against a concurrent
// transition winning the race.
type ConfirmOrderUseCase struct {
	orderRepo order.Repository
	notifier  OrderNotifier
	logger    logger.Interface
}

func NewConfirmOrderUseCase(
	orderRepo order.Repository,
	notifier OrderNotifier,
	logger logger.Interface,
) *ConfirmOrderUseCase {
	return &ConfirmOrderUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *ConfirmOrderUseCase) Execute(ctx context.Context, cmd ConfirmOrderCommand) (*dto.OrderDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	loadedVersion := o.Version()
	if err := o.Confirm(cmd.ActorID); err != nil {
		return nil, mapGuardError(err)
	}

	if err := uc.orderRepo.Update(ctx, o, loadedVersion); err != nil {
		uc.logger.Errorw("failed to persist order confirmation", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Infow("order confirmed", "order_id", o.ID(), "number", o.Number(), "seller_id", cmd.ActorID)

	uc.notifier.NotifyOrderEvent(ctx, o.BuyerID(),
		"Order confirmed",
		fmt.Sprintf("The seller confirmed order %s.", o.Number()),
		o.ID(),
	)

	return dto.FromEntity(o), nil
}
