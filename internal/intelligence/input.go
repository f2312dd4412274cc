package intelligence

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type AnalyzeBody struct {
	CampaignID   uint   `json:"campaign_id"`
	SalesPageURL string `json:"sales_page_url"`
}

func (b AnalyzeBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.CampaignID, v.Required),
		v.Field(&b.SalesPageURL, v.Required, is.URL),
	)
}
