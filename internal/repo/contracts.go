package repo

import (
	"context"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/internal/entity"
)

type (
	SubmissionRepo interface {
		// Create persists s and sets s.ID to the identifier assigned by the store.
		Create(ctx context.Context, s *entity.Submission) error
		GetByID(ctx context.Context, id string) (*entity.Submission, error)
		// List returns every submission, newest first.
		List(ctx context.Context) ([]*entity.Submission, error)
		Delete(ctx context.Context, id string) error
	}

	ImageStorage interface {
		// Store writes the file and returns the reference kept in Submission.Images.
		Store(ctx context.Context, file dto.UploadFile) (string, error)
		// Delete removes the object behind ref. A missing object yields errs.ErrObjectNotFound.
		Delete(ctx context.Context, ref string) error
		SupportsDelete() bool
		Name() string
	}
)
