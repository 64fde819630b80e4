package v1

import (
	"github.com/andreyxaxa/Social-Submissions/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/Social-Submissions/internal/usecase"
	"github.com/andreyxaxa/Social-Submissions/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewSubmissionRoutes(apiGroup fiber.Router, sub usecase.SubmissionUseCase, limits validate.Limits, l logger.Interface) {
	r := &V1{sub: sub, limits: limits, logger: l}

	{
		apiGroup.Post("/submissions", r.createSubmission)
		apiGroup.Get("/submissions", r.listSubmissions)
		apiGroup.Delete("/submissions/:id", r.deleteSubmission)
	}
}

// NewUIRoutes serves the embedded upload page.
func NewUIRoutes(router fiber.Router, l logger.Interface) {
	r := &V1{logger: l}

	router.Get("/", r.showUI)
}
