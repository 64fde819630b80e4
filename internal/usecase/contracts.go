package usecase

import (
	"context"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/internal/entity"
)

type (
	SubmissionUseCase interface {
		Create(ctx context.Context, in dto.NewSubmission) (*entity.Submission, error)
		List(ctx context.Context) ([]*entity.Submission, error)
		Delete(ctx context.Context, id string) error
	}
)
