package mappers

import (
	"tradepost/internal/domain/order"
	vo "tradepost/internal/domain/order/valueobjects"
	"tradepost/internal/infrastructure/persistence/models"
)

// OrderMapper handles the conversion between order domain entities and persistence models.
type OrderMapper interface {
	ToModel(o *order.Order) *models.OrderModel
	ToDomain(model *models.OrderModel) (*order.Order, error)
	ReviewToModel(r *order.Review) *models.ReviewModel
	ReviewToDomain(model *models.ReviewModel) (*order.Review, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToModel(o *order.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:                 o.ID(),
		Number:             o.Number(),
		ListingID:          o.ListingID(),
		BuyerID:            o.BuyerID(),
		SellerID:           o.SellerID(),
		TotalAmount:        o.TotalAmount(),
		Status:             o.Status().String(),
		MeetingLocation:    o.MeetingLocation(),
		MeetingTime:        o.MeetingTime(),
		Notes:              o.Notes(),
		ConfirmedAt:        o.ConfirmedAt(),
		CompletedAt:        o.CompletedAt(),
		CancelledAt:        o.CancelledAt(),
		CancellationReason: o.CancellationReason(),
		RefundedAt:         o.RefundedAt(),
		Version:            o.Version(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func (m *OrderMapperImpl) ToDomain(model *models.OrderModel) (*order.Order, error) {
	status, err := vo.NewOrderStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return order.ReconstructOrder(
		model.ID,
		model.Number,
		model.ListingID,
		model.BuyerID,
		model.SellerID,
		model.TotalAmount,
		status,
		model.MeetingLocation,
		model.MeetingTime,
		model.Notes,
		model.ConfirmedAt,
		model.CompletedAt,
		model.CancelledAt,
		model.CancellationReason,
		model.RefundedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *OrderMapperImpl) ReviewToModel(r *order.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:         r.ID(),
		OrderID:    r.OrderID(),
		ReviewerID: r.ReviewerID(),
		Rating:     r.Rating(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}

func (m *OrderMapperImpl) ReviewToDomain(model *models.ReviewModel) (*order.Review, error) {
	return order.ReconstructReview(
		model.ID,
		model.OrderID,
		model.ReviewerID,
		model.Rating,
		model.Comment,
		model.CreatedAt,
	)
}
