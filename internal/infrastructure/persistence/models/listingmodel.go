package models

import "time"

type ListingModel struct {
	ID        uint    `gorm:"primaryKey"`
	SellerID  uint    `gorm:"not null;index"`
	Title     string  `gorm:"size:200;not null"`
	Price     float64 `gorm:"not null"`
	Active    bool    `gorm:"not null;default:true;index"`
	Sold      bool    `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ListingModel) TableName() string {
	return "listings"
}
