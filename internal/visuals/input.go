package visuals

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ImageBody struct {
	CampaignID  uint   `json:"campaign_id"`
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
}

func (b ImageBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.CampaignID, v.Required),
		v.Field(&b.Prompt, v.Required, v.Length(3, 4000)),
		v.Field(&b.AspectRatio, v.In("", "1:1", "16:9", "9:16")),
	)
}

type MockupBody struct {
	CampaignID      uint   `json:"campaign_id"`
	MockupUUID      string `json:"mockup_uuid"`
	SmartObjectUUID string `json:"smart_object_uuid"`
	ArtworkURL      string `json:"artwork_url"`
}

func (b MockupBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.CampaignID, v.Required),
		v.Field(&b.MockupUUID, v.Required, is.UUID),
		v.Field(&b.SmartObjectUUID, v.Required, is.UUID),
		v.Field(&b.ArtworkURL, v.Required, is.URL),
	)
}

type SlideshowBody struct {
	CampaignID  uint   `json:"campaign_id"`
	ImageURL    string `json:"image_url"`
	Prompt      string `json:"prompt"`
	DurationSec int    `json:"duration_sec"`
}

func (b SlideshowBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.CampaignID, v.Required),
		v.Field(&b.ImageURL, v.Required, is.URL),
		v.Field(&b.DurationSec, v.Min(0), v.Max(10)),
	)
}
