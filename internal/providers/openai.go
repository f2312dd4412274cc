package providers

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
)

const openAIBaseURL = "https://api.openai.com/v1"

type OpenAI struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewOpenAI() *OpenAI {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{
		client: resty.New().SetBaseURL(openAIBaseURL),
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  model,
	}
}

func (o *OpenAI) Name() string {
	return "openai"
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (o *OpenAI) GenerateText(req TextRequest) (*TextResult, error) {
	messages := []map[string]string{}
	if req.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.Prompt})

	var out openAIChatResponse
	resp, err := o.client.R().
		SetAuthToken(o.apiKey).
		SetBody(map[string]interface{}{
			"model":      o.model,
			"messages":   messages,
			"max_tokens": req.MaxTokens,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openai chat failed: %s, %s", resp.Status(), resp.String())
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	return &TextResult{
		Text:         out.Choices[0].Message.Content,
		Provider:     o.Name(),
		InputTokens:  out.Usage.PromptTokens,
		OutputTokens: out.Usage.CompletionTokens,
		Cost:         textCost(o.Name(), out.Usage.PromptTokens, out.Usage.CompletionTokens),
	}, nil
}

// OpenAIImages is the DALL-E side of the OpenAI API, registered as its own
// provider so the image fallback chain can address it separately.
type OpenAIImages struct {
	client *resty.Client
	apiKey string
}

func NewOpenAIImages() *OpenAIImages {
	return &OpenAIImages{
		client: resty.New().SetBaseURL(openAIBaseURL),
		apiKey: os.Getenv("OPENAI_API_KEY"),
	}
}

func (o *OpenAIImages) Name() string {
	return "openai-image"
}

type openAIImageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

func (o *OpenAIImages) GenerateImage(req ImageRequest) (*ImageResult, error) {
	size := "1024x1024"
	if req.AspectRatio == "16:9" {
		size = "1792x1024"
	} else if req.AspectRatio == "9:16" {
		size = "1024x1792"
	}

	var out openAIImageResponse
	resp, err := o.client.R().
		SetAuthToken(o.apiKey).
		SetBody(map[string]interface{}{
			"model":           "dall-e-3",
			"prompt":          req.Prompt,
			"size":            size,
			"response_format": "b64_json",
		}).
		SetResult(&out).
		Post("/images/generations")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openai image failed: %s, %s", resp.Status(), resp.String())
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("openai returned no image data")
	}

	png, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("could not decode image payload: %w", err)
	}

	return &ImageResult{
		PNG:      png,
		Provider: o.Name(),
		Cost:     FlatCost(o.Name()),
	}, nil
}
