package providers

// USD per 1K tokens. Rates are static estimates used for quota accounting,
// not billing.
var textRates = map[string][2]float64{
	"deepseek":  {0.00014, 0.00028},
	"openai":    {0.00015, 0.0006},
	"anthropic": {0.003, 0.015},
}

// USD per generated asset.
var flatRates = map[string]float64{
	"stability":      0.04,
	"openai-image":   0.08,
	"dynamicmockups": 0.02,
	"runway":         0.25,
}

func textCost(provider string, inputTokens, outputTokens int) float64 {
	rates, ok := textRates[provider]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1000*rates[0] + float64(outputTokens)/1000*rates[1]
}

// FlatCost returns the per-asset rate for non-token providers.
func FlatCost(provider string) float64 {
	return flatRates[provider]
}
