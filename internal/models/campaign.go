package models

import "time"

// Campaign represents the campaigns table
type Campaign struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;index" json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tier        string    `gorm:"default:free" json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
}
