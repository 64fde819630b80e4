package submission

import (
	"strings"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/internal/entity"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
)

func platformList() string {
	ps := entity.Platforms()

	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, string(p))
	}

	return strings.Join(names, ", ")
}

// validate builds the record skeleton from in. Upload constraints on single
// files belong to the upload handler; only the count is rechecked here.
func (uc *SubmissionUseCase) validate(in dto.NewSubmission) (*entity.Submission, error) {
	if len(in.Files) == 0 {
		uc.metrics.Rejected("no_files")
		return nil, errs.NewValidationError("No images uploaded")
	}
	if len(in.Files) > uc.maxFiles {
		uc.metrics.Rejected("too_many_files")
		return nil, errs.NewValidationError("Too many files. Maximum is %d", uc.maxFiles)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		uc.metrics.Rejected("missing_field")
		return nil, errs.NewValidationError("name is required")
	}

	handle := strings.TrimSpace(in.SocialHandle)
	if handle == "" {
		uc.metrics.Rejected("missing_field")
		return nil, errs.NewValidationError("socialHandle is required")
	}

	if strings.TrimSpace(in.SocialPlatform) == "" {
		uc.metrics.Rejected("missing_field")
		return nil, errs.NewValidationError("socialPlatform is required")
	}

	platform, ok := entity.ParsePlatform(in.SocialPlatform)
	if !ok {
		uc.metrics.Rejected("platform")
		return nil, errs.NewValidationError("Invalid socialPlatform. Allowed: %s", platformList())
	}

	return &entity.Submission{
		Name:           name,
		SocialPlatform: platform,
		SocialHandle:   handle,
	}, nil
}
