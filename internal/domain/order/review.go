package order

import (
	"errors"
	"fmt"
	"time"
)

// Review rating bounds.
const (
	RatingMin = 1
	RatingMax = 5
)

var (
	ErrRatingOutOfRange   = errors.New("rating must be between 1 and 5")
	ErrOrderNotReviewable = errors.New("only completed orders can be reviewed")
	ErrAlreadyReviewed    = errors.New("order already reviewed by this user")
)

// Review is a buyer's rating of a completed order. At most one review exists
// per (order, reviewer) pair.
type Review struct {
	id         uint
	orderID    uint
	reviewerID uint
	rating     int
	comment    string
	createdAt  time.Time
}

// NewReview validates the rating bounds and binds the review to its order.
// Lifecycle guards (order completed, reviewer is the buyer, no duplicate)
// belong to the order aggregate and the use case layer.
func NewReview(orderID uint, reviewerID uint, rating int, comment string) (*Review, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}
	if reviewerID == 0 {
		return nil, fmt.Errorf("reviewer ID is required")
	}
	if rating < RatingMin || rating > RatingMax {
		return nil, ErrRatingOutOfRange
	}
	if len(comment) > 2000 {
		return nil, fmt.Errorf("comment exceeds maximum length of 2000 characters")
	}

	return &Review{
		orderID:    orderID,
		reviewerID: reviewerID,
		rating:     rating,
		comment:    comment,
		createdAt:  time.Now().UTC(),
	}, nil
}

func ReconstructReview(id uint, orderID uint, reviewerID uint, rating int, comment string, createdAt time.Time) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if rating < RatingMin || rating > RatingMax {
		return nil, ErrRatingOutOfRange
	}

	return &Review{
		id:         id,
		orderID:    orderID,
		reviewerID: reviewerID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
	}, nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) OrderID() uint {
	return r.orderID
}

func (r *Review) ReviewerID() uint {
	return r.reviewerID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}
