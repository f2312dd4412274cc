package providers

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
)

const dynamicMockupsBaseURL = "https://app.dynamicmockups.com/api/v1"

// DynamicMockups composites an artwork onto a PSD template and returns a
// URL to the rendered image.
type DynamicMockups struct {
	client *resty.Client
	apiKey string
}

func NewDynamicMockups() *DynamicMockups {
	return &DynamicMockups{
		client: resty.New().SetBaseURL(dynamicMockupsBaseURL),
		apiKey: os.Getenv("DYNAMIC_MOCKUPS_API_KEY"),
	}
}

func (m *DynamicMockups) Name() string {
	return "dynamicmockups"
}

type mockupRenderResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ExportPath string `json:"export_path"`
	} `json:"data"`
	Message string `json:"message"`
}

type mockupTemplatesResponse struct {
	Data []struct {
		UUID string `json:"uuid"`
		Name string `json:"name"`
	} `json:"data"`
}

// Render fills the template's smart object with the artwork at artworkURL
// and returns the URL of the rendered PNG.
func (m *DynamicMockups) Render(mockupUUID, smartObjectUUID, artworkURL string) (string, error) {
	var out mockupRenderResponse
	resp, err := m.client.R().
		SetHeader("x-api-key", m.apiKey).
		SetBody(map[string]interface{}{
			"mockup_uuid":  mockupUUID,
			"export_label": "campaignforge",
			"smart_objects": []map[string]interface{}{
				{
					"uuid": smartObjectUUID,
					"asset": map[string]string{
						"url": artworkURL,
					},
				},
			},
		}).
		SetResult(&out).
		Post("/renders")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("mockup render failed: %s, %s", resp.Status(), resp.String())
	}
	if !out.Success || out.Data.ExportPath == "" {
		return "", fmt.Errorf("mockup render rejected: %s", out.Message)
	}

	return out.Data.ExportPath, nil
}

// Templates lists the mockup templates available to the account.
func (m *DynamicMockups) Templates() ([]MockupTemplate, error) {
	var out mockupTemplatesResponse
	resp, err := m.client.R().
		SetHeader("x-api-key", m.apiKey).
		SetResult(&out).
		Get("/mockups")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("mockup templates failed: %s, %s", resp.Status(), resp.String())
	}

	templates := make([]MockupTemplate, 0, len(out.Data))
	for _, t := range out.Data {
		templates = append(templates, MockupTemplate{UUID: t.UUID, Name: t.Name})
	}
	return templates, nil
}

type MockupTemplate struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}
