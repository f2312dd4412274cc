package quota

import (
	"testing"
	"time"

	"github.com/campaignforge/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.UsageRecord{}))
	return gdb
}

func TestRecordAndSummary(t *testing.T) {
	gdb := newTestDB(t)

	require.NoError(t, Record(gdb, "user-1", 1, "deepseek", "ad_copy", 0.002, true))
	require.NoError(t, Record(gdb, "user-1", 1, "openai", "blog_post", 0.01, true))
	// Failed calls and other users don't count against the quota
	require.NoError(t, Record(gdb, "user-1", 1, "anthropic", "blog_post", 0, false))
	require.NoError(t, Record(gdb, "user-2", 2, "deepseek", "ad_copy", 0.002, true))

	summary, err := MonthlySummary(gdb, "user-1", "free")
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Generations)
	assert.InDelta(t, 0.012, summary.TotalCost, 1e-9)
	assert.Equal(t, 20, summary.Limit)
	assert.Equal(t, int64(18), summary.Remaining)
}

func TestRecordSurfacesInsertFailure(t *testing.T) {
	// No migration: the insert must fail loudly, not vanish
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = Record(gdb, "user-1", 1, "deepseek", "ad_copy", 0.002, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not record usage")
}

func TestSummaryIgnoresPreviousMonths(t *testing.T) {
	gdb := newTestDB(t)

	old := models.UsageRecord{
		UserID:    "user-1",
		Provider:  "deepseek",
		Success:   true,
		CreatedAt: time.Now().AddDate(0, -2, 0),
	}
	require.NoError(t, gdb.Create(&old).Error)
	require.NoError(t, Record(gdb, "user-1", 1, "deepseek", "ad_copy", 0.002, true))

	summary, err := MonthlySummary(gdb, "user-1", "free")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Generations)
}

func TestAllowAtLimit(t *testing.T) {
	gdb := newTestDB(t)

	for i := 0; i < 19; i++ {
		require.NoError(t, Record(gdb, "user-1", 1, "deepseek", "ad_copy", 0.001, true))
	}

	allowed, err := Allow(gdb, "user-1", "free")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, Record(gdb, "user-1", 1, "deepseek", "ad_copy", 0.001, true))

	allowed, err = Allow(gdb, "user-1", "free")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestEnterpriseIsUnlimited(t *testing.T) {
	gdb := newTestDB(t)

	allowed, err := Allow(gdb, "user-1", "enterprise")
	require.NoError(t, err)
	assert.True(t, allowed)

	summary, err := MonthlySummary(gdb, "user-1", "enterprise")
	require.NoError(t, err)
	assert.Equal(t, -1, summary.Limit)
	assert.Equal(t, int64(-1), summary.Remaining)
}

func TestUnknownTierGetsFreeLimit(t *testing.T) {
	assert.Equal(t, 20, Limit("free"))
	assert.Equal(t, 20, Limit("something-else"))
	assert.Equal(t, -1, Limit("enterprise"))
}
