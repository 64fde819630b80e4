package persistent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/google/uuid"
)

const localBackend = "local"

// LocalImageStorage keeps images in a directory served statically under urlPrefix.
type LocalImageStorage struct {
	dir       string
	urlPrefix string
}

func NewLocalImageStorage(dir, urlPrefix string) (*LocalImageStorage, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("LocalImageStorage - New - os.MkdirAll: %w", err)
	}

	return &LocalImageStorage{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

func (r *LocalImageStorage) Store(ctx context.Context, file dto.UploadFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("LocalImageStorage - Store: %w", err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)

	err := os.WriteFile(filepath.Join(r.dir, name), file.Data, 0o644)
	if err != nil {
		return "", fmt.Errorf("LocalImageStorage - Store - os.WriteFile: %w", err)
	}

	return path.Join(r.urlPrefix, name), nil
}

func (r *LocalImageStorage) Delete(ctx context.Context, ref string) error {
	name, ok := r.fileName(ref)
	if !ok {
		return fmt.Errorf("LocalImageStorage - Delete - %s: %w", ref, errs.ErrObjectNotFound)
	}

	err := os.Remove(filepath.Join(r.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("LocalImageStorage - Delete - %s: %w", ref, errs.ErrObjectNotFound)
		}
		return fmt.Errorf("LocalImageStorage - Delete - os.Remove: %w", err)
	}

	return nil
}

// fileName maps "<prefix>/<name>" to <name>. References outside the prefix
// or with nested segments are rejected so a record cannot point outside dir.
func (r *LocalImageStorage) fileName(ref string) (string, bool) {
	rest, found := strings.CutPrefix(ref, r.urlPrefix+"/")
	if !found || rest == "" || strings.ContainsAny(rest, `/\`) || rest == "." || rest == ".." {
		return "", false
	}

	return rest, true
}

func (r *LocalImageStorage) SupportsDelete() bool {
	return true
}

func (r *LocalImageStorage) Name() string {
	return localBackend
}

func (r *LocalImageStorage) URLPrefix() string {
	return r.urlPrefix
}
