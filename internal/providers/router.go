package providers

import (
	"fmt"
	"log"
	"os"
)

// Routing is a static lookup: (tier, complexity) -> ordered provider
// chain, cheapest first. A provider that errors is skipped, never
// retried; the chain's last error surfaces when every entry fails.

var textChains = map[string][]string{
	"free/low":        {"deepseek", "openai"},
	"free/high":       {"deepseek", "openai"},
	"starter/low":     {"deepseek", "openai", "anthropic"},
	"starter/high":    {"openai", "deepseek", "anthropic"},
	"pro/low":         {"deepseek", "openai", "anthropic"},
	"pro/high":        {"anthropic", "openai", "deepseek"},
	"enterprise/low":  {"openai", "anthropic", "deepseek"},
	"enterprise/high": {"anthropic", "openai", "deepseek"},
}

var defaultTextChain = []string{"deepseek", "openai", "anthropic"}

var imageChains = map[string][]string{
	"free":       {"stability"},
	"starter":    {"stability", "openai-image"},
	"pro":        {"stability", "openai-image"},
	"enterprise": {"openai-image", "stability"},
}

var defaultImageChain = []string{"stability", "openai-image"}

// TextChain resolves the provider order for a tier and complexity.
func TextChain(tier, complexity string) []string {
	if chain, ok := textChains[tier+"/"+complexity]; ok {
		return chain
	}
	return defaultTextChain
}

// ImageChain resolves the image provider order for a tier.
func ImageChain(tier string) []string {
	if chain, ok := imageChains[tier]; ok {
		return chain
	}
	return defaultImageChain
}

// Registry holds the provider clients that have API keys configured.
type Registry struct {
	text    map[string]TextProvider
	image   map[string]ImageProvider
	Mockups *DynamicMockups
	Video   *Runway
}

// NewRegistryFromEnv builds clients for every provider whose API key is
// present in the environment.
func NewRegistryFromEnv() *Registry {
	r := &Registry{
		text:  map[string]TextProvider{},
		image: map[string]ImageProvider{},
	}

	if os.Getenv("OPENAI_API_KEY") != "" {
		r.text["openai"] = NewOpenAI()
		r.image["openai-image"] = NewOpenAIImages()
	}
	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		r.text["anthropic"] = NewAnthropic()
	}
	if os.Getenv("DEEPSEEK_API_KEY") != "" {
		r.text["deepseek"] = NewDeepSeek()
	}
	if os.Getenv("STABILITY_API_KEY") != "" {
		r.image["stability"] = NewStability()
	}
	if os.Getenv("DYNAMIC_MOCKUPS_API_KEY") != "" {
		r.Mockups = NewDynamicMockups()
	}
	if os.Getenv("RUNWAY_API_KEY") != "" {
		r.Video = NewRunway()
	}

	return r
}

// GenerateText walks the routed chain until one provider answers.
func (r *Registry) GenerateText(tier, complexity string, req TextRequest) (*TextResult, error) {
	return generateText(r.text, TextChain(tier, complexity), req)
}

func generateText(reg map[string]TextProvider, chain []string, req TextRequest) (*TextResult, error) {
	var lastErr error
	for _, name := range chain {
		p, ok := reg[name]
		if !ok {
			continue
		}
		result, err := p.GenerateText(req)
		if err != nil {
			log.Printf("Text provider %s failed, falling through: %v", name, err)
			lastErr = err
			continue
		}
		return result, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no text provider configured for chain %v", chain)
	}
	return nil, lastErr
}

// GenerateImage walks the routed chain until one provider answers.
func (r *Registry) GenerateImage(tier string, req ImageRequest) (*ImageResult, error) {
	return generateImage(r.image, ImageChain(tier), req)
}

func generateImage(reg map[string]ImageProvider, chain []string, req ImageRequest) (*ImageResult, error) {
	var lastErr error
	for _, name := range chain {
		p, ok := reg[name]
		if !ok {
			continue
		}
		result, err := p.GenerateImage(req)
		if err != nil {
			log.Printf("Image provider %s failed, falling through: %v", name, err)
			lastErr = err
			continue
		}
		return result, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no image provider configured for chain %v", chain)
	}
	return nil, lastErr
}

var registry *Registry

// Init builds the package-level registry from the environment.
func Init() {
	registry = NewRegistryFromEnv()
}

func Get() *Registry {
	return registry
}
