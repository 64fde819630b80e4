package v1

import (
	"github.com/andreyxaxa/Social-Submissions/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/Social-Submissions/internal/usecase"
	"github.com/andreyxaxa/Social-Submissions/pkg/logger"
)

type V1 struct {
	sub    usecase.SubmissionUseCase
	limits validate.Limits
	logger logger.Interface
}
