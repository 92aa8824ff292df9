package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationModel struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;index:idx_user_read"`
	Type      string         `gorm:"size:50;not null"`
	Title     string         `gorm:"size:200;not null"`
	Message   string         `gorm:"type:text;not null"`
	ActionURL string         `gorm:"size:500"`
	Related   datatypes.JSON `gorm:"type:json"`
	IsRead    bool           `gorm:"not null;default:false;index:idx_user_read"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}
