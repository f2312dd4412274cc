package intelligence

import (
	"log"

	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/models"
	"github.com/campaignforge/server/internal/quota"
	"github.com/gofiber/fiber/v2"
)

func MountController(router fiber.Router) {
	router.Post("/analyze", AnalyzeSalesPage)
	router.Get("/:id", GetIntelligence)
}

// AnalyzeSalesPage scrapes a competitor page, extracts structured facts
// through the text provider chain and persists them.
func AnalyzeSalesPage(c *fiber.Ctx) error {
	var body AnalyzeBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}
	if err := body.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	var campaign models.Campaign
	if err := db.GetDB().First(&campaign, body.CampaignID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "campaign not found",
		})
	}

	allowed, err := quota.Allow(db.GetDB(), campaign.UserID, campaign.Tier)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}
	if !allowed {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"success": false, "error": "monthly generation quota exhausted",
		})
	}

	log.Printf("Analyzing sales page %s for campaign %d", body.SalesPageURL, campaign.ID)

	html, text, err := fetchSalesPage(body.SalesPageURL)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}
	go archiveRawPage(body.SalesPageURL, html)

	intel, result, err := analyzePage(text, campaign.Tier)
	if result != nil {
		if rerr := quota.Record(db.GetDB(), campaign.UserID, campaign.ID, result.Provider, "intelligence", result.Cost, err == nil); rerr != nil {
			log.Printf("Failed to record usage for user %s: %v", campaign.UserID, rerr)
		}
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	intel.CampaignID = campaign.ID
	intel.SourceURL = body.SalesPageURL
	if err := db.GetDB().Create(intel).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"intelligence": intel,
	})
}

func GetIntelligence(c *fiber.Ctx) error {
	var intel models.IntelligenceCore
	err := db.GetDB().
		Preload("ProductData").
		Preload("MarketData").
		First(&intel, c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "intelligence not found",
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"intelligence": intel,
	})
}
