package content

import (
	"github.com/campaignforge/server/internal/models"
	"github.com/campaignforge/server/internal/providers"
)

const generationSystem = "You are a direct-response copywriter. You answer only with the requested JSON, no prose around it."

// Longer formats route as high complexity so the chain can reach the
// stronger providers on paid tiers.
var contentComplexity = map[string]string{
	"email_sequence": "high",
	"ad_copy":        "low",
	"blog_post":      "high",
	"social_posts":   "low",
}

// generate fills the prompt for the content type and walks the routed
// provider chain.
func generate(intel *models.IntelligenceCore, contentType, tier string, amplifierKeys []string) (*models.GeneratedContent, *providers.TextResult, error) {
	prompt, err := buildPrompt(contentType, intel, amplifierKeys)
	if err != nil {
		return nil, nil, err
	}

	result, err := providers.Get().GenerateText(tier, contentComplexity[contentType], providers.TextRequest{
		System:    generationSystem,
		Prompt:    prompt,
		MaxTokens: 4000,
	})
	if err != nil {
		return nil, result, err
	}

	generated := &models.GeneratedContent{
		IntelligenceID: intel.ID,
		ContentType:    contentType,
		Body:           normalizeBody(result.Text),
		Provider:       result.Provider,
		Cost:           result.Cost,
	}

	return generated, result, nil
}
