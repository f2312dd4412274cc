package models

import "time"

// CampaignAsset represents the campaign_assets table. Every binary asset
// (generated image, mockup render, slideshow video) is mirrored to two
// object storage providers; at least one URL is always populated.
type CampaignAsset struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CampaignID     uint      `gorm:"column:campaign_id;index" json:"campaign_id"`
	AssetType      string    `gorm:"column:asset_type" json:"asset_type"`
	ObjectKey      string    `gorm:"column:object_key" json:"object_key"`
	ContentType    string    `gorm:"column:content_type" json:"content_type"`
	PrimaryURL     string    `gorm:"column:primary_url" json:"primary_url"`
	BackupURL      string    `gorm:"column:backup_url" json:"backup_url"`
	PrimaryHealthy bool      `gorm:"column:primary_healthy;default:true" json:"primary_healthy"`
	Provider       string    `json:"provider"`
	SizeBytes      int64     `gorm:"column:size_bytes" json:"size_bytes"`
	CreatedAt      time.Time `json:"created_at"`
}

func (CampaignAsset) TableName() string {
	return "campaign_assets"
}
