package campaigns

import (
	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/models"
	"github.com/gofiber/fiber/v2"
)

func MountController(router fiber.Router) {
	router.Post("/", CreateCampaign)
	router.Get("/", ListCampaigns)
	router.Get("/:id", GetCampaign)
	router.Get("/:id/intelligence", ListCampaignIntelligence)
	router.Get("/:id/content", ListCampaignContent)
	router.Get("/:id/assets", ListCampaignAssets)
}

func CreateCampaign(c *fiber.Ctx) error {
	var body CreateBody
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

	tier := body.Tier
	if tier == "" {
		tier = "free"
	}

	campaign := models.Campaign{
		UserID:      body.UserID,
		Title:       body.Title,
		Description: body.Description,
		Tier:        tier,
	}
	if err := db.GetDB().Create(&campaign).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"campaign": campaign,
	})
}

func ListCampaigns(c *fiber.Ctx) error {
	query := db.GetDB().Order("created_at desc")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var list []models.Campaign
	if err := query.Find(&list).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"count":     len(list),
		"campaigns": list,
	})
}

func GetCampaign(c *fiber.Ctx) error {
	var campaign models.Campaign
	if err := db.GetDB().First(&campaign, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "campaign not found",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"campaign": campaign,
	})
}

func ListCampaignIntelligence(c *fiber.Ctx) error {
	var list []models.IntelligenceCore
	err := db.GetDB().
		Where("campaign_id = ?", c.Params("id")).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"count":        len(list),
		"intelligence": list,
	})
}

func ListCampaignContent(c *fiber.Ctx) error {
	var list []models.GeneratedContent
	err := db.GetDB().
		Where("campaign_id = ?", c.Params("id")).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(list),
		"content": list,
	})
}

func ListCampaignAssets(c *fiber.Ctx) error {
	var list []models.CampaignAsset
	err := db.GetDB().
		Where("campaign_id = ?", c.Params("id")).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(list),
		"assets":  list,
	})
}
