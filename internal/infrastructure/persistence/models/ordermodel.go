package models

import "time"

type OrderModel struct {
	ID                 uint    `gorm:"primaryKey"`
	Number             string  `gorm:"uniqueIndex;size:50;not null"`
	ListingID          uint    `gorm:"not null;index"`
	BuyerID            uint    `gorm:"not null;index"`
	SellerID           uint    `gorm:"not null;index"`
	TotalAmount        float64 `gorm:"not null"`
	Status             string  `gorm:"size:20;not null;index"`
	MeetingLocation    string  `gorm:"size:255"`
	MeetingTime        *time.Time
	Notes              string `gorm:"size:1000"`
	ConfirmedAt        *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string `gorm:"size:500"`
	RefundedAt         *time.Time
	Version            int       `gorm:"not null;default:1"`
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (OrderModel) TableName() string {
	return "orders"
}

type ReviewModel struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    uint   `gorm:"not null;uniqueIndex:idx_order_reviewer"`
	ReviewerID uint   `gorm:"not null;uniqueIndex:idx_order_reviewer;index"`
	Rating     int    `gorm:"not null"`
	Comment    string `gorm:"size:2000"`
	CreatedAt  time.Time
}

func (ReviewModel) TableName() string {
	return "order_reviews"
}
