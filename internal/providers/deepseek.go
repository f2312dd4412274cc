package providers

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
)

const deepSeekBaseURL = "https://api.deepseek.com/v1"

// DeepSeek speaks the OpenAI chat wire format on its own endpoint. It is
// the cheapest text provider and leads most routing chains.
type DeepSeek struct {
	client *resty.Client
	apiKey string
}

func NewDeepSeek() *DeepSeek {
	return &DeepSeek{
		client: resty.New().SetBaseURL(deepSeekBaseURL),
		apiKey: os.Getenv("DEEPSEEK_API_KEY"),
	}
}

func (d *DeepSeek) Name() string {
	return "deepseek"
}

func (d *DeepSeek) GenerateText(req TextRequest) (*TextResult, error) {
	messages := []map[string]string{}
	if req.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.Prompt})

	var out openAIChatResponse
	resp, err := d.client.R().
		SetAuthToken(d.apiKey).
		SetBody(map[string]interface{}{
			"model":      "deepseek-chat",
			"messages":   messages,
			"max_tokens": req.MaxTokens,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("deepseek chat failed: %s, %s", resp.Status(), resp.String())
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("deepseek returned no choices")
	}

	return &TextResult{
		Text:         out.Choices[0].Message.Content,
		Provider:     d.Name(),
		InputTokens:  out.Usage.PromptTokens,
		OutputTokens: out.Usage.CompletionTokens,
		Cost:         textCost(d.Name(), out.Usage.PromptTokens, out.Usage.CompletionTokens),
	}, nil
}
