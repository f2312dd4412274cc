package usage

import (
	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/quota"
	"github.com/gofiber/fiber/v2"
)

func MountController(router fiber.Router) {
	router.Get("/:userID/summary", GetSummary)
}

// GetSummary answers the user's current-month generation count and cost
// against their tier quota. Tier defaults to free when not supplied.
func GetSummary(c *fiber.Ctx) error {
	tier := c.Query("tier")
	if tier == "" {
		tier = "free"
	}

	summary, err := quota.MonthlySummary(db.GetDB(), c.Params("userID"), tier)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
	})
}
