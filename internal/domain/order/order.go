// Package order contains the order aggregate and its lifecycle rules. An order
// moves along a fixed transition graph, every transition is gated by the
// acting user's role (buyer or seller, derived from the order itself), and a
// failed guard leaves the aggregate untouched.
package order

import (
	"errors"
	"fmt"
	"time"

	vo "tradepost/internal/domain/order/valueobjects"
)

// Guard failures. Callers map these onto the transport error taxonomy:
// ErrInvalidTransition to a state conflict, the role errors to forbidden.
var (
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrNotBuyer          = errors.New("actor is not the buyer of this order")
	ErrNotSeller         = errors.New("actor is not the seller of this order")
	ErrNotParticipant    = errors.New("actor is neither buyer nor seller of this order")
)

type Order struct {
	id                 uint
	number             string
	listingID          uint
	buyerID            uint
	sellerID           uint
	totalAmount        float64
	status             vo.OrderStatus
	meetingLocation    string
	meetingTime        *time.Time
	notes              string
	confirmedAt        *time.Time
	completedAt        *time.Time
	cancelledAt        *time.Time
	cancellationReason string
	refundedAt         *time.Time
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

func NewOrder(
	listingID uint,
	buyerID uint,
	sellerID uint,
	totalAmount float64,
	meetingLocation string,
	meetingTime *time.Time,
	notes string,
) (*Order, error) {
	if listingID == 0 {
		return nil, fmt.Errorf("listing ID is required")
	}
	if buyerID == 0 {
		return nil, fmt.Errorf("buyer ID is required")
	}
	if sellerID == 0 {
		return nil, fmt.Errorf("seller ID is required")
	}
	if buyerID == sellerID {
		return nil, fmt.Errorf("buyer and seller cannot be the same user")
	}
	if totalAmount < 0 {
		return nil, fmt.Errorf("total amount cannot be negative")
	}

	now := time.Now().UTC()
	return &Order{
		listingID:       listingID,
		buyerID:         buyerID,
		sellerID:        sellerID,
		totalAmount:     totalAmount,
		status:          vo.StatusPending,
		meetingLocation: meetingLocation,
		meetingTime:     meetingTime,
		notes:           notes,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructOrder(
	id uint,
	number string,
	listingID uint,
	buyerID uint,
	sellerID uint,
	totalAmount float64,
	status vo.OrderStatus,
	meetingLocation string,
	meetingTime *time.Time,
	notes string,
	confirmedAt *time.Time,
	completedAt *time.Time,
	cancelledAt *time.Time,
	cancellationReason string,
	refundedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("order number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	return &Order{
		id:                 id,
		number:             number,
		listingID:          listingID,
		buyerID:            buyerID,
		sellerID:           sellerID,
		totalAmount:        totalAmount,
		status:             status,
		meetingLocation:    meetingLocation,
		meetingTime:        meetingTime,
		notes:              notes,
		confirmedAt:        confirmedAt,
		completedAt:        completedAt,
		cancelledAt:        cancelledAt,
		cancellationReason: cancellationReason,
		refundedAt:         refundedAt,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) ListingID() uint {
	return o.listingID
}

func (o *Order) BuyerID() uint {
	return o.buyerID
}

func (o *Order) SellerID() uint {
	return o.sellerID
}

func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

func (o *Order) Status() vo.OrderStatus {
	return o.status
}

func (o *Order) MeetingLocation() string {
	return o.meetingLocation
}

func (o *Order) MeetingTime() *time.Time {
	return o.meetingTime
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

func (o *Order) RefundedAt() *time.Time {
	return o.refundedAt
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Order) SetNumber(number string) error {
	if len(o.number) > 0 {
		return fmt.Errorf("order number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("order number cannot be empty")
	}
	o.number = number
	return nil
}

// IsBuyer reports whether userID is the buyer of this order.
func (o *Order) IsBuyer(userID uint) bool {
	return o.buyerID == userID
}

// IsSeller reports whether userID is the seller of this order.
func (o *Order) IsSeller(userID uint) bool {
	return o.sellerID == userID
}

// IsParticipant reports whether userID is the buyer or the seller.
func (o *Order) IsParticipant(userID uint) bool {
	return o.IsBuyer(userID) || o.IsSeller(userID)
}

// Counterpart returns the other party relative to userID. Callers must ensure
// userID is a participant first.
func (o *Order) Counterpart(userID uint) uint {
	if o.IsBuyer(userID) {
		return o.sellerID
	}
	return o.buyerID
}

// Confirm moves Pending -> Confirmed. Only the seller may confirm.
func (o *Order) Confirm(actorID uint) error {
	if !o.IsSeller(actorID) {
		return ErrNotSeller
	}
	if !o.status.IsPending() || !o.status.CanTransitionTo(vo.StatusConfirmed) {
		return fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, o.status)
	}

	now := time.Now().UTC()
	o.status = vo.StatusConfirmed
	o.confirmedAt = &now
	o.touch(now)
	return nil
}

// Cancel moves Pending -> Cancelled. Either party may cancel a pending order;
// a confirmed order is not cancellable through this path (see Reject).
func (o *Order) Cancel(actorID uint, reason string) error {
	if !o.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if !o.status.IsPending() {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, o.status)
	}

	o.markCancelled(reason)
	return nil
}

// Reject moves Confirmed -> Cancelled: the seller backs out of an order they
// already accepted. This is the only path off Confirmed other than Complete.
func (o *Order) Reject(actorID uint, reason string) error {
	if !o.IsSeller(actorID) {
		return ErrNotSeller
	}
	if !o.status.IsConfirmed() || !o.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("%w: reject from %s", ErrInvalidTransition, o.status)
	}

	o.markCancelled(reason)
	return nil
}

func (o *Order) markCancelled(reason string) {
	now := time.Now().UTC()
	o.status = vo.StatusCancelled
	o.cancelledAt = &now
	o.cancellationReason = reason
	o.touch(now)
}

// Complete moves Confirmed -> Completed. Either party may complete.
func (o *Order) Complete(actorID uint) error {
	if !o.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if !o.status.IsConfirmed() || !o.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, o.status)
	}

	now := time.Now().UTC()
	o.status = vo.StatusCompleted
	o.completedAt = &now
	o.touch(now)
	return nil
}

// Refund moves Completed or Cancelled -> Refunded. This is an administrative
// action; the caller is responsible for verifying the actor's privileges.
func (o *Order) Refund() error {
	if !o.status.CanTransitionTo(vo.StatusRefunded) {
		return fmt.Errorf("%w: refund from %s", ErrInvalidTransition, o.status)
	}

	now := time.Now().UTC()
	o.status = vo.StatusRefunded
	o.refundedAt = &now
	o.touch(now)
	return nil
}

// CanBeDeletedBy checks the hard-delete guard: only a participant may delete,
// and only while the order is Pending or Cancelled.
func (o *Order) CanBeDeletedBy(actorID uint) error {
	if !o.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if !o.status.IsDeletable() {
		return fmt.Errorf("%w: delete from %s", ErrInvalidTransition, o.status)
	}
	return nil
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
	o.version++
}
