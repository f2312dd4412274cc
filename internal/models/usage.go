package models

import "time"

// UsageRecord represents the usage_records table: one row per AI provider
// call, successful or not. Quota checks sum the current month per user.
type UsageRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;index" json:"user_id"`
	CampaignID  uint      `gorm:"column:campaign_id" json:"campaign_id"`
	Provider    string    `json:"provider"`
	ContentType string    `gorm:"column:content_type" json:"content_type"`
	Cost        float64   `json:"cost"`
	Success     bool      `json:"success"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (UsageRecord) TableName() string {
	return "usage_records"
}
