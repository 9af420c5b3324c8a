package models

import "time"

type Reminder struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	// Date is a calendar day, YYYY-MM-DD.
	Date    string `gorm:"size:10;not null;index" json:"date"`
	Content string `gorm:"size:500;not null" json:"content"`
	Status  string `gorm:"size:20;default:'normal';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
