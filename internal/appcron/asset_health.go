package appcron

import (
	"log"
	"time"

	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/models"
	"github.com/campaignforge/server/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

// Assets older than this are left alone; dead links on ancient assets
// are surfaced by GetAssetURL on demand.
const recheckWindow = 30 * 24 * time.Hour

func SetupAssetHealthCron() {
	c := cron.New()

	// Re-check stored asset URLs every hour
	_, err := c.AddFunc("0 * * * *", runAssetHealthJob)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Asset health cron job scheduled to run hourly")
}

func MountController(router fiber.Router) {
	router.Post("/run-asset-health", func(c *fiber.Ctx) error {
		go runAssetHealthJob()
		return c.JSON(fiber.Map{
			"message": "Asset health job started",
		})
	})
}

// runAssetHealthJob HEADs the primary URL of every recent asset and
// records which side is currently serving.
func runAssetHealthJob() {
	log.Println("Starting asset health job")

	assets, err := getAssetsForRecheck()
	if err != nil {
		log.Printf("Error getting assets: %v", err)
		return
	}

	log.Printf("Found %d assets to re-check", len(assets))

	checker := storage.Checker()
	flipped := 0
	for _, asset := range assets {
		healthy := checker.Healthy(asset.PrimaryURL)
		if healthy == asset.PrimaryHealthy {
			continue
		}
		err := db.GetDB().
			Model(&models.CampaignAsset{}).
			Where("id = ?", asset.ID).
			Update("primary_healthy", healthy).Error
		if err != nil {
			log.Printf("Error updating asset %d: %v", asset.ID, err)
			continue
		}
		flipped++
	}

	log.Printf("Asset health job completed, %d assets flipped", flipped)
}

func getAssetsForRecheck() ([]models.CampaignAsset, error) {
	var assets []models.CampaignAsset

	result := db.GetDB().
		Where("primary_url <> ''").
		Where("created_at >= ?", time.Now().Add(-recheckWindow)).
		Order("created_at desc").
		Find(&assets)
	if result.Error != nil {
		return nil, result.Error
	}

	return assets, nil
}
