package models

import "time"

// GeneratedContent represents the generated_content table. Body holds the
// provider output as JSON (email sequences and social posts are arrays,
// ads and blog posts are single objects).
type GeneratedContent struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CampaignID     uint      `gorm:"column:campaign_id;index" json:"campaign_id"`
	IntelligenceID uint      `gorm:"column:intelligence_id" json:"intelligence_id"`
	ContentType    string    `gorm:"column:content_type" json:"content_type"`
	Body           string    `gorm:"type:jsonb" json:"body"`
	Provider       string    `json:"provider"`
	Cost           float64   `json:"cost"`
	CreatedAt      time.Time `json:"created_at"`
}

func (GeneratedContent) TableName() string {
	return "generated_content"
}
