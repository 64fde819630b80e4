package persistent

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/pkg/s3client"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const s3Backend = "s3"

type S3ImageStorage struct {
	*s3client.S3Client
	bucket        string
	publicBaseURL string
	keyPrefix     string
}

func NewS3ImageStorage(s3c *s3client.S3Client, bucket, publicBaseURL, keyPrefix string) *S3ImageStorage {
	return &S3ImageStorage{
		S3Client:      s3c,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		keyPrefix:     strings.Trim(keyPrefix, "/"),
	}
}

func (r *S3ImageStorage) Store(ctx context.Context, file dto.UploadFile) (string, error) {
	key := objectKey(r.keyPrefix, uuid.NewString()+filepath.Ext(file.Filename))

	_, err := r.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("S3ImageStorage - Store - r.Uploader.Upload: %w", err)
	}

	return objectURL(r.publicBaseURL, key), nil
}

func (r *S3ImageStorage) Delete(ctx context.Context, ref string) error {
	key, ok := keyFromURL(r.publicBaseURL, ref)
	if !ok {
		return fmt.Errorf("S3ImageStorage - Delete - %s: %w", ref, errs.ErrObjectNotFound)
	}

	// DeleteObject succeeds for a missing key, so an already removed object
	// is reported as deleted, not as errs.ErrObjectNotFound.
	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("S3ImageStorage - Delete - r.Client.DeleteObject: %w", err)
	}

	return nil
}

func (r *S3ImageStorage) SupportsDelete() bool {
	return true
}

func (r *S3ImageStorage) Name() string {
	return s3Backend
}

func objectKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func objectURL(baseURL, key string) string {
	return baseURL + "/" + key
}

func keyFromURL(baseURL, ref string) (string, bool) {
	key, found := strings.CutPrefix(ref, baseURL+"/")
	if !found || key == "" {
		return "", false
	}

	return key, true
}
