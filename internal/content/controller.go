package content

import (
	"log"

	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/models"
	"github.com/campaignforge/server/internal/quota"
	"github.com/gofiber/fiber/v2"
)

func MountController(router fiber.Router) {
	router.Post("/generate", GenerateContent)
	router.Get("/types", ListContentTypes)
	router.Get("/:id", GetContent)
}

// GenerateContent turns stored intelligence into one marketing artifact
// (emails, ads, blog post or social posts).
func GenerateContent(c *fiber.Ctx) error {
	var body GenerateBody
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

	var intel models.IntelligenceCore
	err := db.GetDB().
		Preload("ProductData").
		Preload("MarketData").
		First(&intel, body.IntelligenceID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "intelligence not found",
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

	log.Printf("Generating %s for campaign %d from intelligence %d", body.ContentType, campaign.ID, intel.ID)

	generated, result, err := generate(&intel, body.ContentType, campaign.Tier, body.Amplifiers)
	if result != nil {
		if rerr := quota.Record(db.GetDB(), campaign.UserID, campaign.ID, result.Provider, body.ContentType, result.Cost, err == nil); rerr != nil {
			log.Printf("Failed to record usage for user %s: %v", campaign.UserID, rerr)
		}
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	generated.CampaignID = campaign.ID
	if err := db.GetDB().Create(generated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"content": generated,
	})
}

func GetContent(c *fiber.Ctx) error {
	var generated models.GeneratedContent
	if err := db.GetDB().First(&generated, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "content not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"content": generated,
	})
}

func ListContentTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"types":      ContentTypes(),
		"amplifiers": AmplifierKeys(),
	})
}
