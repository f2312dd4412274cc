package web

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var client = resty.New().SetTimeout(2 * time.Minute)

// FetchMedia downloads a remote asset (rendered mockup, provider output
// video) and returns its bytes.
func FetchMedia(mediaURI string) ([]byte, error) {
	resp, err := client.R().
		SetHeader("User-Agent", "campaignforge-fetchmedia").
		Get(mediaURI)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch media: %s, %s", resp.Status(), resp.String())
	}

	return resp.Body(), nil
}
