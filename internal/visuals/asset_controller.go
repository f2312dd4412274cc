package visuals

import (
	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/models"
	"github.com/campaignforge/server/internal/storage"
	"github.com/gofiber/fiber/v2"
)

func MountAssetController(router fiber.Router) {
	router.Get("/:id", GetAsset)
	router.Get("/:id/url", GetAssetURL)
}

func GetAsset(c *fiber.Ctx) error {
	var asset models.CampaignAsset
	if err := db.GetDB().First(&asset, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "asset not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"asset":   asset,
	})
}

// GetAssetURL resolves the asset's currently healthy URL, preferring the
// primary provider.
func GetAssetURL(c *fiber.Ctx) error {
	var asset models.CampaignAsset
	if err := db.GetDB().First(&asset, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "asset not found",
		})
	}

	url, healthy := storage.Checker().PickURL(asset.PrimaryURL, asset.BackupURL)

	return c.JSON(fiber.Map{
		"success": true,
		"url":     url,
		"healthy": healthy,
	})
}
