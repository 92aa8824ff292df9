package usecases

import (
	"context"
	"fmt"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/logger"
)

type RejectOrderCommand struct {
	OrderID uint
	ActorID uint
	Reason  string
}

// RejectOrderUseCase lets the seller back out of an order they already
// confirmed, moving it to cancelled.
type RejectOrderUseCase struct {
	orderRepo order.Repository
	notifier  OrderNotifier
	logger    logger.Interface
}

func NewRejectOrderUseCase(
	orderRepo order.Repository,
	notifier OrderNotifier,
	logger logger.Interface,
) *RejectOrderUseCase {
	return &RejectOrderUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *RejectOrderUseCase) Execute(ctx context.Context, cmd RejectOrderCommand) (*dto.OrderDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	loadedVersion := o.Version()
	if err := o.Reject(cmd.ActorID, cmd.Reason); err != nil {
		return nil, mapGuardError(err)
	}

	if err := uc.orderRepo.Update(ctx, o, loadedVersion); err != nil {
		uc.logger.Errorw("failed to persist order rejection", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Infow("order rejected", "order_id", o.ID(), "number", o.Number(), "seller_id", cmd.ActorID)

	uc.notifier.NotifyOrderEvent(ctx, o.BuyerID(),
		"Order rejected",
		fmt.Sprintf("The seller rejected order %s.", o.Number()),
		o.ID(),
	)

	return dto.FromEntity(o), nil
}
