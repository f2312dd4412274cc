package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/campaignforge/server/internal/models"
	"github.com/campaignforge/server/internal/providers"
)

const extractionSystem = "You are a marketing analyst. You answer only with valid JSON, no prose."

const extractionPrompt = `Analyze this competitor sales page text and extract structured facts.

Answer with JSON of this exact shape:
{
  "product_name": "...",
  "summary": "one paragraph",
  "confidence": 0.0,
  "product_facts": [{"category": "feature|benefit|pricing|guarantee", "details": {}}],
  "market_facts": [{"category": "audience|positioning|objection|competitor", "details": {}}]
}

Sales page text:
---
%s
---`

type analysisFact struct {
	Category string                 `json:"category"`
	Details  map[string]interface{} `json:"details"`
}

type analysisResult struct {
	ProductName  string         `json:"product_name"`
	Summary      string         `json:"summary"`
	Confidence   float64        `json:"confidence"`
	ProductFacts []analysisFact `json:"product_facts"`
	MarketFacts  []analysisFact `json:"market_facts"`
}

// parseAnalysis decodes the provider's JSON answer, tolerating markdown
// code fences around the payload.
func parseAnalysis(raw string) (*analysisResult, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}

	var result analysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("could not parse analysis response: %w", err)
	}
	if result.ProductName == "" {
		return nil, fmt.Errorf("analysis response had no product_name")
	}

	return &result, nil
}

// analyzePage runs the extraction prompt through the text provider chain
// and maps the answer onto intelligence rows.
func analyzePage(pageText, tier string) (*models.IntelligenceCore, *providers.TextResult, error) {
	result, err := providers.Get().GenerateText(tier, "high", providers.TextRequest{
		System:    extractionSystem,
		Prompt:    fmt.Sprintf(extractionPrompt, pageText),
		MaxTokens: 4000,
	})
	if err != nil {
		return nil, nil, err
	}

	analysis, err := parseAnalysis(result.Text)
	if err != nil {
		return nil, result, err
	}

	intel := &models.IntelligenceCore{
		ProductName: analysis.ProductName,
		Summary:     analysis.Summary,
		Confidence:  analysis.Confidence,
		Provider:    result.Provider,
	}
	for _, fact := range analysis.ProductFacts {
		details, _ := json.Marshal(fact.Details)
		intel.ProductData = append(intel.ProductData, models.ProductFact{
			Category: fact.Category,
			Details:  string(details),
		})
	}
	for _, fact := range analysis.MarketFacts {
		details, _ := json.Marshal(fact.Details)
		intel.MarketData = append(intel.MarketData, models.MarketFact{
			Category: fact.Category,
			Details:  string(details),
		})
	}

	return intel, result, nil
}
