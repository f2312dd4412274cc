package providers

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
)

const anthropicBaseURL = "https://api.anthropic.com/v1"

type Anthropic struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewAnthropic() *Anthropic {
	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-3-5-sonnet-20241022"
	}
	return &Anthropic{
		client: resty.New().SetBaseURL(anthropicBaseURL),
		apiKey: os.Getenv("ANTHROPIC_API_KEY"),
		model:  model,
	}
}

func (a *Anthropic) Name() string {
	return "anthropic"
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (a *Anthropic) GenerateText(req TextRequest) (*TextResult, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	var out anthropicResponse
	resp, err := a.client.R().
		SetHeader("x-api-key", a.apiKey).
		SetHeader("anthropic-version", "2023-06-01").
		SetBody(map[string]interface{}{
			"model":      a.model,
			"system":     req.System,
			"max_tokens": maxTokens,
			"messages": []map[string]string{
				{"role": "user", "content": req.Prompt},
			},
		}).
		SetResult(&out).
		Post("/messages")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("anthropic messages failed: %s, %s", resp.Status(), resp.String())
	}
	if len(out.Content) == 0 {
		return nil, fmt.Errorf("anthropic returned no content")
	}

	return &TextResult{
		Text:         out.Content[0].Text,
		Provider:     a.Name(),
		InputTokens:  out.Usage.InputTokens,
		OutputTokens: out.Usage.OutputTokens,
		Cost:         textCost(a.Name(), out.Usage.InputTokens, out.Usage.OutputTokens),
	}, nil
}
