package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/andreyxaxa/Social-Submissions/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// readUpload decodes the multipart body and enforces the per-file limits.
// Field level rules are left to the usecase.
func (r *V1) readUpload(ctx *fiber.Ctx) (dto.NewSubmission, error) {
	if !strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return dto.NewSubmission{
			Name:           ctx.FormValue("name"),
			SocialHandle:   ctx.FormValue("socialHandle"),
			SocialPlatform: ctx.FormValue("socialPlatform"),
		}, nil
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return dto.NewSubmission{}, errs.NewValidationError("Invalid multipart body")
	}

	// 1. field names
	for field := range form.File {
		if field != validate.ImagesField {
			return dto.NewSubmission{}, errs.NewValidationError("Unexpected field")
		}
	}

	headers := form.File[validate.ImagesField]

	// 2. count
	if len(headers) > r.limits.MaxFiles {
		return dto.NewSubmission{}, errs.NewValidationError("Too many files. Maximum is %d", r.limits.MaxFiles)
	}

	// 3. extension, then size, per file
	for _, fh := range headers {
		if !validate.HasAllowedExtension(fh.Filename) {
			return dto.NewSubmission{}, errs.NewValidationError("Only image files are allowed!")
		}
		if fh.Size > r.limits.MaxFileSize {
			return dto.NewSubmission{}, errs.NewValidationError("File too large. Maximum size is %d bytes", r.limits.MaxFileSize)
		}
	}

	// 4. staging
	files := make([]dto.UploadFile, 0, len(headers))
	for _, fh := range headers {
		file, err := stageFile(fh)
		if err != nil {
			return dto.NewSubmission{}, err
		}
		files = append(files, file)
	}

	return dto.NewSubmission{
		Name:           formValue(form, "name"),
		SocialHandle:   formValue(form, "socialHandle"),
		SocialPlatform: formValue(form, "socialPlatform"),
		Files:          files,
	}, nil
}

func stageFile(fh *multipart.FileHeader) (dto.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.UploadFile{}, fmt.Errorf("stageFile - fh.Open: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return dto.UploadFile{}, fmt.Errorf("stageFile - io.ReadAll: %w", err)
	}

	return dto.UploadFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}

	return ""
}
