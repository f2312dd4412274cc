package providers

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
)

const stabilityBaseURL = "https://api.stability.ai"

type Stability struct {
	client *resty.Client
	apiKey string
}

func NewStability() *Stability {
	return &Stability{
		client: resty.New().SetBaseURL(stabilityBaseURL),
		apiKey: os.Getenv("STABILITY_API_KEY"),
	}
}

func (s *Stability) Name() string {
	return "stability"
}

// GenerateImage calls the stable-image core endpoint, which answers with
// raw PNG bytes when the Accept header asks for an image.
func (s *Stability) GenerateImage(req ImageRequest) (*ImageResult, error) {
	aspect := req.AspectRatio
	if aspect == "" {
		aspect = "1:1"
	}

	resp, err := s.client.R().
		SetAuthToken(s.apiKey).
		SetHeader("Accept", "image/*").
		SetMultipartFormData(map[string]string{
			"prompt":        req.Prompt,
			"aspect_ratio":  aspect,
			"output_format": "png",
		}).
		Post("/v2beta/stable-image/generate/core")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stability generate failed: %s, %s", resp.Status(), resp.String())
	}

	return &ImageResult{
		PNG:      resp.Body(),
		Provider: s.Name(),
		Cost:     FlatCost(s.Name()),
	}, nil
}
