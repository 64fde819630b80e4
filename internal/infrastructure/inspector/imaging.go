package inspector

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/disintegration/imaging"
)

// formats reported by image.DecodeConfig that are accepted
var allowedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// ImageInspector checks that the uploaded bytes really are a jpeg, png or gif.
type ImageInspector struct{}

func New() *ImageInspector {
	return &ImageInspector{}
}

func (i *ImageInspector) Inspect(ctx context.Context, file dto.UploadFile) error {
	_, format, err := image.DecodeConfig(bytes.NewReader(file.Data))
	if err != nil || !allowedFormats[format] {
		return fmt.Errorf("ImageInspector - Inspect - image.DecodeConfig %s: %w",
			file.Filename, errs.NewValidationError("File content is not a supported image"))
	}

	// header alone is not enough, a truncated body still decodes the config
	_, err = imaging.Decode(bytes.NewReader(file.Data))
	if err != nil {
		return fmt.Errorf("ImageInspector - Inspect - imaging.Decode %s: %w",
			file.Filename, errs.NewValidationError("File content is not a supported image"))
	}

	return nil
}

// NopInspector accepts everything; extension checks are the only gate.
type NopInspector struct{}

func NewNop() NopInspector {
	return NopInspector{}
}

func (NopInspector) Inspect(context.Context, dto.UploadFile) error { return nil }
