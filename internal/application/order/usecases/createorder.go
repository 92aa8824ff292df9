package usecases

import (
	"context"
	"fmt"
	"time"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

type CreateOrderCommand struct {
	BuyerID         uint
	ListingID       uint
	MeetingLocation string
	MeetingTime     *time.Time
	Notes           string
}

type CreateOrderUseCase struct {
	orderRepo order.Repository
	listings  order.ListingReader
	numbers   order.NumberGenerator
	notifier  OrderNotifier
	logger    logger.Interface
}

func NewCreateOrderUseCase(
	orderRepo order.Repository,
	listings order.ListingReader,
	numbers order.NumberGenerator,
	notifier OrderNotifier,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		listings:  listings,
		numbers:   numbers,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.OrderDTO, error) {
	listing, err := uc.listings.FindByID(ctx, cmd.ListingID)
	if err != nil {
		return nil, err
	}

	if !listing.Active {
		return nil, errors.NewStateConflictError("listing is no longer available")
	}
	if listing.Sold {
		return nil, errors.NewStateConflictError("listing has already been sold")
	}
	if listing.SellerID == cmd.BuyerID {
		return nil, errors.NewValidationError("cannot order your own listing")
	}

	newOrder, err := order.NewOrder(
		cmd.ListingID,
		cmd.BuyerID,
		listing.SellerID,
		listing.Price,
		cmd.MeetingLocation,
		cmd.MeetingTime,
		cmd.Notes,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numbers.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate order number", "error", err)
		return nil, errors.NewInternalError("failed to generate order number")
	}
	if err := newOrder.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.orderRepo.Create(ctx, newOrder); err != nil {
		uc.logger.Errorw("failed to create order",
			"listing_id", cmd.ListingID,
			"buyer_id", cmd.BuyerID,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("order created",
		"order_id", newOrder.ID(),
		"number", newOrder.Number(),
		"buyer_id", cmd.BuyerID,
		"seller_id", listing.SellerID,
	)

	uc.notifier.NotifyOrderEvent(ctx, listing.SellerID,
		"New order received",
		fmt.Sprintf("You received order %s for %q.", newOrder.Number(), listing.Title),
		newOrder.ID(),
	)

	return dto.FromEntity(newOrder), nil
}
