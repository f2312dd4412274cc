package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/campaignforge/server/internal/models"
)

// Prompt templates per content type. Each asks for a JSON payload so the
// stored body stays machine-readable.
var promptTemplates = map[string]string{
	"email_sequence": `Write a 5-email marketing sequence for {{.ProductName}}.
Product summary: {{.Summary}}
{{template "facts" .}}
Answer with a JSON array of objects: [{"subject": "...", "body": "..."}].`,

	"ad_copy": `Write 3 short paid-ad variants for {{.ProductName}}.
Product summary: {{.Summary}}
{{template "facts" .}}
Answer with a JSON array of objects: [{"headline": "...", "body": "...", "cta": "..."}].`,

	"blog_post": `Write a long-form blog post promoting {{.ProductName}}.
Product summary: {{.Summary}}
{{template "facts" .}}
Answer with a JSON object: {"title": "...", "body": "...", "meta_description": "..."}.`,

	"social_posts": `Write 5 social media posts for {{.ProductName}}, varied in angle.
Product summary: {{.Summary}}
{{template "facts" .}}
Answer with a JSON array of objects: [{"platform": "...", "text": "...", "hashtags": []}].`,
}

const factsTemplate = `{{define "facts"}}Known product facts:
{{range .ProductFacts}}- {{.Category}}: {{.Details}}
{{end}}Known market facts:
{{range .MarketFacts}}- {{.Category}}: {{.Details}}
{{end}}{{end}}`

type promptData struct {
	ProductName  string
	Summary      string
	ProductFacts []models.ProductFact
	MarketFacts  []models.MarketFact
}

var compiledTemplates = map[string]*template.Template{}

func init() {
	for name, text := range promptTemplates {
		tmpl := template.Must(template.New(name).Parse(text))
		template.Must(tmpl.Parse(factsTemplate))
		compiledTemplates[name] = tmpl
	}
}

// ContentTypes lists the supported generation targets.
func ContentTypes() []string {
	types := make([]string, 0, len(promptTemplates))
	for name := range promptTemplates {
		types = append(types, name)
	}
	return types
}

// buildPrompt fills the content type's template from intelligence facts
// and appends any requested amplifiers.
func buildPrompt(contentType string, intel *models.IntelligenceCore, amplifiers []string) (string, error) {
	tmpl, ok := compiledTemplates[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, promptData{
		ProductName:  intel.ProductName,
		Summary:      intel.Summary,
		ProductFacts: intel.ProductData,
		MarketFacts:  intel.MarketData,
	})
	if err != nil {
		return "", err
	}

	return applyAmplifiers(buf.String(), amplifiers), nil
}

// normalizeBody makes sure the stored body is valid JSON. Non-JSON
// provider output is wrapped rather than rejected.
func normalizeBody(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	if json.Valid([]byte(cleaned)) {
		return cleaned
	}

	wrapped, _ := json.Marshal(map[string]string{"text": cleaned})
	return string(wrapped)
}
