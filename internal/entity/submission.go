package entity

import "time"

type Submission struct {
	ID string `json:"id"`

	Name           string   `json:"name"`
	SocialPlatform Platform `json:"socialPlatform"`
	SocialHandle   string   `json:"socialHandle"`
	Images         []string `json:"images"` // relative paths or absolute URLs, upload order

	CreatedAt time.Time `json:"createdAt"`
}
