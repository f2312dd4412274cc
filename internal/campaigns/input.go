package campaigns

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateBody struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
}

func (b CreateBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.UserID, v.Required),
		v.Field(&b.Title, v.Required, v.Length(1, 200)),
		v.Field(&b.Tier, v.In("", "free", "starter", "pro", "enterprise")),
	)
}
