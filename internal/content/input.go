package content

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
)

type GenerateBody struct {
	CampaignID     uint     `json:"campaign_id"`
	IntelligenceID uint     `json:"intelligence_id"`
	ContentType    string   `json:"content_type"`
	Amplifiers     []string `json:"amplifiers"`
}

func (b GenerateBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.CampaignID, v.Required),
		v.Field(&b.IntelligenceID, v.Required),
		v.Field(&b.ContentType, v.Required, v.In("email_sequence", "ad_copy", "blog_post", "social_posts")),
	)
}
