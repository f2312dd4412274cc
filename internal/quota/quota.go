package quota

import (
	"fmt"
	"time"

	"github.com/campaignforge/server/internal/models"
	"gorm.io/gorm"
)

// Monthly generation allowances per subscription tier. -1 is unlimited.
var tierLimits = map[string]int{
	"free":       20,
	"starter":    200,
	"pro":        2000,
	"enterprise": -1,
}

// Limit returns the monthly allowance for a tier. Unknown tiers get the
// free allowance.
func Limit(tier string) int {
	if limit, ok := tierLimits[tier]; ok {
		return limit
	}
	return tierLimits["free"]
}

// Summary is the current-month usage picture for a user.
type Summary struct {
	UserID      string  `json:"user_id"`
	Month       string  `json:"month"`
	Generations int64   `json:"generations"`
	TotalCost   float64 `json:"total_cost"`
	Limit       int     `json:"limit"`
	Remaining   int64   `json:"remaining"`
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// MonthlySummary totals the user's successful generations for the current
// month against the tier limit.
func MonthlySummary(gdb *gorm.DB, userID, tier string) (*Summary, error) {
	now := time.Now()

	monthScope := func() *gorm.DB {
		return gdb.Model(&models.UsageRecord{}).
			Where("user_id = ?", userID).
			Where("success = ?", true).
			Where("created_at >= ?", monthStart(now))
	}

	var count int64
	if err := monthScope().Count(&count).Error; err != nil {
		return nil, err
	}

	var cost float64
	if err := monthScope().Select("COALESCE(SUM(cost), 0)").Scan(&cost).Error; err != nil {
		return nil, err
	}

	limit := Limit(tier)
	remaining := int64(-1)
	if limit >= 0 {
		remaining = int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
	}

	return &Summary{
		UserID:      userID,
		Month:       now.Format("2006-01"),
		Generations: count,
		TotalCost:   cost,
		Limit:       limit,
		Remaining:   remaining,
	}, nil
}

// Allow reports whether the user may run one more generation this month.
func Allow(gdb *gorm.DB, userID, tier string) (bool, error) {
	limit := Limit(tier)
	if limit < 0 {
		return true, nil
	}

	summary, err := MonthlySummary(gdb, userID, tier)
	if err != nil {
		return false, err
	}
	return summary.Remaining > 0, nil
}

// Record writes one usage row for an AI call.
func Record(gdb *gorm.DB, userID string, campaignID uint, provider, contentType string, cost float64, success bool) error {
	record := models.UsageRecord{
		UserID:      userID,
		CampaignID:  campaignID,
		Provider:    provider,
		ContentType: contentType,
		Cost:        cost,
		Success:     success,
		CreatedAt:   time.Now(),
	}
	if err := gdb.Create(&record).Error; err != nil {
		return fmt.Errorf("could not record usage: %w", err)
	}
	return nil
}
