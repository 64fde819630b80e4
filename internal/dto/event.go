package dto

import "time"

const (
	EventSubmissionCreated = "submission.created"
	EventSubmissionDeleted = "submission.deleted"
)

type SubmissionEvent struct {
	Event          string    `json:"event"`
	ID             string    `json:"id"`
	SocialPlatform string    `json:"socialPlatform"`
	Images         []string  `json:"images"`
	OccurredAt     time.Time `json:"occurredAt"`
}
