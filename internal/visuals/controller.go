package visuals

import (
	"fmt"
	"log"

	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/models"
	"github.com/campaignforge/server/internal/providers"
	"github.com/campaignforge/server/internal/quota"
	"github.com/campaignforge/server/pkg/img"
	"github.com/campaignforge/server/pkg/web"
	"github.com/gofiber/fiber/v2"
)

// Generated images above this are downscaled before upload.
const maxImageMPXS = 8.0

func MountController(router fiber.Router) {
	router.Post("/image", GenerateImage)
	router.Post("/mockup", GenerateMockup)
	router.Get("/mockup/templates", ListMockupTemplates)
	router.Post("/slideshow", GenerateSlideshow)
}

func loadCampaignAndCheckQuota(c *fiber.Ctx, campaignID uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := db.GetDB().First(&campaign, campaignID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "campaign not found",
		})
	}

	allowed, err := quota.Allow(db.GetDB(), campaign.UserID, campaign.Tier)
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}
	if !allowed {
		return nil, c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"success": false, "error": "monthly generation quota exhausted",
		})
	}

	return &campaign, nil
}

// GenerateImage produces a campaign visual through the image provider
// chain and mirrors it to both storage providers.
func GenerateImage(c *fiber.Ctx) error {
	var body ImageBody
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

	campaign, ferr := loadCampaignAndCheckQuota(c, body.CampaignID)
	if campaign == nil {
		return ferr
	}

	log.Printf("Generating image for campaign %d", campaign.ID)

	result, err := providers.Get().GenerateImage(campaign.Tier, providers.ImageRequest{
		Prompt:      body.Prompt,
		AspectRatio: body.AspectRatio,
	})
	provider := ""
	cost := 0.0
	if result != nil {
		provider = result.Provider
		cost = result.Cost
	}
	if rerr := quota.Record(db.GetDB(), campaign.UserID, campaign.ID, provider, "image", cost, err == nil); rerr != nil {
		log.Printf("Failed to record usage for user %s: %v", campaign.UserID, rerr)
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	png, err := img.Downscale(result.PNG, maxImageMPXS)
	if err != nil {
		log.Printf("Downscale failed, uploading original: %v", err)
		png = result.PNG
	}

	asset, err := saveAsset(campaign.ID, "image", result.Provider, png, "image/png")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"asset":   asset,
	})
}

// GenerateMockup renders artwork onto a product template via Dynamic
// Mockups and stores the result as a campaign asset.
func GenerateMockup(c *fiber.Ctx) error {
	var body MockupBody
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

	mockups := providers.Get().Mockups
	if mockups == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false, "error": "mockup provider not configured",
		})
	}

	campaign, ferr := loadCampaignAndCheckQuota(c, body.CampaignID)
	if campaign == nil {
		return ferr
	}

	log.Printf("Rendering mockup %s for campaign %d", body.MockupUUID, campaign.ID)

	renderURL, err := mockups.Render(body.MockupUUID, body.SmartObjectUUID, body.ArtworkURL)
	if rerr := quota.Record(db.GetDB(), campaign.UserID, campaign.ID, mockups.Name(), "mockup", providers.FlatCost(mockups.Name()), err == nil); rerr != nil {
		log.Printf("Failed to record usage for user %s: %v", campaign.UserID, rerr)
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	rendered, err := web.FetchMedia(renderURL)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": fmt.Sprintf("could not fetch rendered mockup: %v", err),
		})
	}

	asset, err := saveAsset(campaign.ID, "mockup", mockups.Name(), rendered, "image/png")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"asset":   asset,
	})
}

func ListMockupTemplates(c *fiber.Ctx) error {
	mockups := providers.Get().Mockups
	if mockups == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false, "error": "mockup provider not configured",
		})
	}

	templates, err := mockups.Templates()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"count":     len(templates),
		"templates": templates,
	})
}

// GenerateSlideshow turns a still into a short video clip via RunwayML.
// The task is polled to completion before the clip is mirrored.
func GenerateSlideshow(c *fiber.Ctx) error {
	var body SlideshowBody
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

	video := providers.Get().Video
	if video == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false, "error": "video provider not configured",
		})
	}

	campaign, ferr := loadCampaignAndCheckQuota(c, body.CampaignID)
	if campaign == nil {
		return ferr
	}

	log.Printf("Generating slideshow for campaign %d", campaign.ID)

	taskID, err := video.CreateImageToVideo(body.ImageURL, body.Prompt, body.DurationSec)
	if err != nil {
		if rerr := quota.Record(db.GetDB(), campaign.UserID, campaign.ID, video.Name(), "slideshow", 0, false); rerr != nil {
			log.Printf("Failed to record usage for user %s: %v", campaign.UserID, rerr)
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	outputURL, err := video.WaitForTask(taskID)
	if rerr := quota.Record(db.GetDB(), campaign.UserID, campaign.ID, video.Name(), "slideshow", providers.FlatCost(video.Name()), err == nil); rerr != nil {
		log.Printf("Failed to record usage for user %s: %v", campaign.UserID, rerr)
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	clip, err := web.FetchMedia(outputURL)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "error": fmt.Sprintf("could not fetch generated clip: %v", err),
		})
	}

	asset, err := saveAsset(campaign.ID, "slideshow", video.Name(), clip, "video/mp4")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"asset":   asset,
	})
}
