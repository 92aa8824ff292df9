package dto

import (
	"time"

	"tradepost/internal/domain/order"
)

type OrderDTO struct {
	ID                 uint       `json:"id"`
	Number             string     `json:"number"`
	ListingID          uint       `json:"listing_id"`
	BuyerID            uint       `json:"buyer_id"`
	SellerID           uint       `json:"seller_id"`
	TotalAmount        float64    `json:"total_amount"`
	Status             string     `json:"status"`
	MeetingLocation    string     `json:"meeting_location,omitempty"`
	MeetingTime        *time.Time `json:"meeting_time,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	RefundedAt         *time.Time `json:"refunded_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromEntity(o *order.Order) *OrderDTO {
	return &OrderDTO{
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
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func FromEntities(entities []*order.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, len(entities))
	for i, o := range entities {
		dtos[i] = FromEntity(o)
	}
	return dtos
}

type ReviewDTO struct {
	ID         uint      `json:"id"`
	OrderID    uint      `json:"order_id"`
	ReviewerID uint      `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReviewFromEntity(r *order.Review) *ReviewDTO {
	return &ReviewDTO{
		ID:         r.ID(),
		OrderID:    r.OrderID(),
		ReviewerID: r.ReviewerID(),
		Rating:     r.Rating(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}
