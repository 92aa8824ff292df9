package order

import "context"

// Repository persists order aggregates. Update performs an optimistic
// concurrency check against the version the aggregate was loaded with, so
// concurrent transitions on the same order are serialized at the store:
// the loser observes ErrVersionConflict (returned as a typed error by the
// implementation) and no partial state is written.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindByNumber(ctx context.Context, number string) (*Order, error)
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*Order, int64, error)
	// Update persists the aggregate; expectedVersion is the version at load time.
	Update(ctx context.Context, o *Order, expectedVersion int) error
	Delete(ctx context.Context, id uint) error
}

// ReviewRepository persists reviews, enforcing the one-per-(order, reviewer)
// rule with a unique constraint.
type ReviewRepository interface {
	Create(ctx context.Context, r *Review) error
	ExistsByOrderAndReviewer(ctx context.Context, orderID, reviewerID uint) (bool, error)
	ListByOrderID(ctx context.Context, orderID uint) ([]*Review, error)
}

// Listing is the read-model view of a listing that order creation needs.
type Listing struct {
	ID       uint
	SellerID uint
	Title    string
	Price    float64
	Active   bool
	Sold     bool
}

// ListingReader exposes the listing lookup used to guard order creation.
type ListingReader interface {
	FindByID(ctx context.Context, id uint) (*Listing, error)
}
