package infrastructure

import (
	"context"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
)

type (
	EventsSender interface {
		SendEvent(ctx context.Context, event dto.SubmissionEvent) error
		Close() error
	}

	ContentInspector interface {
		// Inspect fails with errs.ErrValidation when the bytes are not an accepted image.
		Inspect(ctx context.Context, file dto.UploadFile) error
	}
)
