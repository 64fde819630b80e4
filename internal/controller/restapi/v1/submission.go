package v1

import (
	"errors"
	"net/http"

	"github.com/andreyxaxa/Social-Submissions/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// @Summary 	Create submission
// @Description Stores up to five images and records the submission
// @Tags 		submissions
// @Accept 		mpfd
// @Produce 	json
// @Param 		name 			formData string true "Display name"
// @Param 		socialHandle 	formData string true "Handle on the platform"
// @Param 		socialPlatform 	formData string true "Platform" Enums(instagram, facebook, twitter, linkedin, youtube, github)
// @Param 		images 			formData file 	true "Images (.jpg, .jpeg, .png, .gif), up to 5"
// @Success 	201 {object} entity.Submission
// @Failure 	400 {object} response.Error "Validation or upload error"
// @Failure 	413 {object} response.Error "Body too large"
// @Failure 	500 {object} response.Error "Storage or database error"
// @Router 		/api/submissions [post]
func (r *V1) createSubmission(ctx *fiber.Ctx) error {
	in, err := r.readUpload(ctx)
	if err != nil {
		return r.createError(ctx, err)
	}

	names := make([]string, 0, len(in.Files))
	for _, f := range in.Files {
		names = append(names, f.Filename)
	}
	r.logger.Debug("restapi - v1 - createSubmission - name=%q platform=%q files=%v", in.Name, in.SocialPlatform, names)

	s, err := r.sub.Create(ctx.UserContext(), in)
	if err != nil {
		return r.createError(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(s)
}

func (r *V1) createError(ctx *fiber.Ctx, err error) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return errorResponse(ctx, http.StatusBadRequest, ve.Message)
	}

	r.logger.Error(err, "restapi - v1 - createSubmission")

	if errors.Is(err, errs.ErrStorage) {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to upload image to storage")
	}

	return errorResponse(ctx, http.StatusInternalServerError, "Failed to save submission")
}

// @Summary 	List submissions
// @Description Returns every submission, newest first
// @Tags 		submissions
// @Produce 	json
// @Success 	200 {array}  entity.Submission
// @Failure 	500 {object} response.Error "Database error"
// @Router 		/api/submissions [get]
func (r *V1) listSubmissions(ctx *fiber.Ctx) error {
	list, err := r.sub.List(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - listSubmissions")

		return errorResponse(ctx, http.StatusInternalServerError, "Failed to fetch submissions")
	}

	return ctx.Status(http.StatusOK).JSON(list)
}

// @Summary 	Delete submission
// @Description Removes the stored images, when the backend allows it, and the record
// @Tags 		submissions
// @Produce 	json
// @Param		id 	path	 string true "Submission ID"
// @Success		200 {object} response.Message
// @Failure 	404 {object} response.Error "Submission not found"
// @Failure 	500 {object} response.Error "Database error"
// @Router 		/api/submissions/{id} [delete]
func (r *V1) deleteSubmission(ctx *fiber.Ctx) error {
	err := r.sub.Delete(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Submission not found")
		}
		r.logger.Error(err, "restapi - v1 - deleteSubmission")

		return errorResponse(ctx, http.StatusInternalServerError, "Failed to delete submission")
	}

	return ctx.Status(http.StatusOK).JSON(response.Message{Message: "Submission deleted successfully"})
}
