package usecases

import (
	"context"

	"tradepost/internal/application/order/dto"
)

// OrderNotifier produces stored-and-pushed notifications for lifecycle events.
// Dispatch failures are absorbed by the implementation; a transition never
// fails because its notification could not be sent.
type OrderNotifier interface {
	NotifyOrderEvent(ctx context.Context, userID uint, title, message string, orderID uint)
}

type CreateOrderExecutor interface {
	Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.OrderDTO, error)
}

type ConfirmOrderExecutor interface {
	Execute(ctx context.Context, cmd ConfirmOrderCommand) (*dto.OrderDTO, error)
}

type CancelOrderExecutor interface {
	Execute(ctx context.Context, cmd CancelOrderCommand) (*dto.OrderDTO, error)
}

type RejectOrderExecutor interface {
	Execute(ctx context.Context, cmd RejectOrderCommand) (*dto.OrderDTO, error)
}

type CompleteOrderExecutor interface {
	Execute(ctx context.Context, cmd CompleteOrderCommand) (*dto.OrderDTO, error)
}

type RefundOrderExecutor interface {
	Execute(ctx context.Context, cmd RefundOrderCommand) (*dto.OrderDTO, error)
}

type DeleteOrderExecutor interface {
	Execute(ctx context.Context, cmd DeleteOrderCommand) error
}

type AddReviewExecutor interface {
	Execute(ctx context.Context, cmd AddReviewCommand) (*dto.ReviewDTO, error)
}

type GetOrderExecutor interface {
	Execute(ctx context.Context, query GetOrderQuery) (*dto.OrderDTO, error)
}

type ListOrdersExecutor interface {
	Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error)
}
