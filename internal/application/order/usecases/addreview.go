package usecases

import (
	"context"

	"tradepost/internal/application/order/dto"
	"tradepost/internal/domain/order"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
)

type AddReviewCommand struct {
	OrderID    uint
	ReviewerID uint
	Rating     int
	Comment    string
}

// AddReviewUseCase records the buyer's rating of a completed order. One review
// per buyer per order; only the buyer of a completed order may review.
type AddReviewUseCase struct {
	orderRepo  order.Repository
	reviewRepo order.ReviewRepository
	notifier   OrderNotifier
	logger     logger.Interface
}

func NewAddReviewUseCase(
	orderRepo order.Repository,
	reviewRepo order.ReviewRepository,
	notifier OrderNotifier,
	logger logger.Interface,
) *AddReviewUseCase {
	return &AddReviewUseCase{
		orderRepo:  orderRepo,
		reviewRepo: reviewRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AddReviewUseCase) Execute(ctx context.Context, cmd AddReviewCommand) (*dto.ReviewDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if !o.IsBuyer(cmd.ReviewerID) {
		return nil, errors.NewForbiddenError("only the buyer can review this order")
	}
	if !o.Status().IsCompleted() {
		return nil, errors.NewStateConflictError(order.ErrOrderNotReviewable.Error())
	}

	exists, err := uc.reviewRepo.ExistsByOrderAndReviewer(ctx, cmd.OrderID, cmd.ReviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError(order.ErrAlreadyReviewed.Error())
	}

	review, err := order.NewReview(cmd.OrderID, cmd.ReviewerID, cmd.Rating, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		uc.logger.Errorw("failed to create review", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Infow("review added",
		"review_id", review.ID(),
		"order_id", cmd.OrderID,
		"rating", cmd.Rating,
	)

	uc.notifier.NotifyOrderEvent(ctx, o.SellerID(),
		"New review received",
		"A buyer left a review on one of your orders.",
		o.ID(),
	)

	return dto.ReviewFromEntity(review), nil
}
