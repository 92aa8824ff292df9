package usecases

import (
	"context"
	"fmt"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

type RefundOrderCommand struct {
	OrderID uint
	ActorID uint
	IsAdmin bool
}

// RefundOrderUseCase is the administrative path off a completed or cancelled
// order. It is never exposed to buyers or sellers directly.
type RefundOrderUseCase struct {
	orderRepo order.Repository
	notifier  OrderNotifier
	logger    logger.Interface
}

func NewRefundOrderUseCase(
	orderRepo order.Repository,
	notifier OrderNotifier,
	logger logger.Interface,
) *RefundOrderUseCase {
	return &RefundOrderUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *RefundOrderUseCase) Execute(ctx context.Context, cmd RefundOrderCommand) (*dto.OrderDTO, error) {
	if !cmd.IsAdmin {
		return nil, errors.NewForbiddenError("refunds require administrator privileges")
	}

	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	loadedVersion := o.Version()
	if err := o.Refund(); err != nil {
		return nil, mapGuardError(err)
	}

	if err := uc.orderRepo.Update(ctx, o, loadedVersion); err != nil {
		uc.logger.Errorw("failed to persist order refund", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Infow("order refunded",
		"order_id", o.ID(),
		"number", o.Number(),
		"admin_id", cmd.ActorID,
	)

	uc.notifier.NotifyOrderEvent(ctx, o.BuyerID(),
		"Order refunded",
		fmt.Sprintf("Order %s was refunded.", o.Number()),
		o.ID(),
	)
	uc.notifier.NotifyOrderEvent(ctx, o.SellerID(),
		"Order refunded",
		fmt.Sprintf("Order %s was refunded.", o.Number()),
		o.ID(),
	)

	return dto.FromEntity(o), nil
}
