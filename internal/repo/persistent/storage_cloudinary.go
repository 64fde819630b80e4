package persistent

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/pkg/cloudinaryclient"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const cloudinaryBackend = "cloudinary"

var cloudinaryFormats = api.CldAPIArray{"jpg", "jpeg", "png", "gif"}

// CloudinaryImageStorage uploads to Cloudinary and returns the secure URL.
// Deletion is not implemented; SupportsDelete reports the gap.
type CloudinaryImageStorage struct {
	*cloudinaryclient.CloudinaryClient
	folder string
}

func NewCloudinaryImageStorage(c *cloudinaryclient.CloudinaryClient, folder string) *CloudinaryImageStorage {
	return &CloudinaryImageStorage{c, folder}
}

func (r *CloudinaryImageStorage) Store(ctx context.Context, file dto.UploadFile) (string, error) {
	res, err := r.Client.Upload.Upload(ctx, bytes.NewReader(file.Data), uploader.UploadParams{
		Folder:         r.folder,
		ResourceType:   "auto",
		AllowedFormats: cloudinaryFormats,
	})
	if err != nil {
		return "", fmt.Errorf("CloudinaryImageStorage - Store - r.Client.Upload.Upload: %w", err)
	}

	if res.Error.Message != "" {
		return "", fmt.Errorf("CloudinaryImageStorage - Store - res.Error: %w", errors.New(res.Error.Message))
	}

	return res.SecureURL, nil
}

func (r *CloudinaryImageStorage) Delete(ctx context.Context, ref string) error {
	return fmt.Errorf("CloudinaryImageStorage - Delete - %s: %w", ref, errs.ErrDeleteUnsupported)
}

func (r *CloudinaryImageStorage) SupportsDelete() bool {
	return false
}

func (r *CloudinaryImageStorage) Name() string {
	return cloudinaryBackend
}
