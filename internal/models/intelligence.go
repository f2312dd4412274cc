package models

import "time"

// IntelligenceCore represents the intelligence_core table: one analyzed
// competitor sales page per row.
type IntelligenceCore struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CampaignID  uint          `gorm:"column:campaign_id;index" json:"campaign_id"`
	SourceURL   string        `gorm:"column:source_url" json:"source_url"`
	ProductName string        `gorm:"column:product_name" json:"product_name"`
	Summary     string        `json:"summary"`
	Confidence  float64       `json:"confidence"`
	Provider    string        `json:"provider"`
	CreatedAt   time.Time     `json:"created_at"`
	ProductData []ProductFact `gorm:"foreignKey:IntelligenceID" json:"product_data,omitempty"`
	MarketData  []MarketFact  `gorm:"foreignKey:IntelligenceID" json:"market_data,omitempty"`
}

func (IntelligenceCore) TableName() string {
	return "intelligence_core"
}

// ProductFact is a normalized product-level finding (feature, benefit,
// price point, guarantee) extracted from a sales page.
type ProductFact struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	IntelligenceID uint   `gorm:"column:intelligence_id;index" json:"intelligence_id"`
	Category       string `json:"category"`
	Details        string `gorm:"type:jsonb" json:"details"`
}

func (ProductFact) TableName() string {
	return "product_data"
}

// MarketFact is a normalized market-level finding (audience, positioning,
// competitor angle) extracted from a sales page.
type MarketFact struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	IntelligenceID uint   `gorm:"column:intelligence_id;index" json:"intelligence_id"`
	Category       string `json:"category"`
	Details        string `gorm:"type:jsonb" json:"details"`
}

func (MarketFact) TableName() string {
	return "market_data"
}
