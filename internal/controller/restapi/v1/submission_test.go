package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andreyxaxa/Social-Submissions/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/internal/entity"
	"github.com/andreyxaxa/Social-Submissions/pkg/logger"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct {
	got       dto.NewSubmission
	createErr error
	listErr   error
	deleteErr error
}

func (s *stubUseCase) Create(_ context.Context, in dto.NewSubmission) (*entity.Submission, error) {
	s.got = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &entity.Submission{ID: "abc", Name: in.Name, Images: []string{"/uploads/x.png"}}, nil
}

func (s *stubUseCase) List(context.Context) ([]*entity.Submission, error) {
	return []*entity.Submission{}, s.listErr
}

func (s *stubUseCase) Delete(context.Context, string) error {
	return s.deleteErr
}

func newApp(uc *stubUseCase) *fiber.App {
	app := fiber.New()
	NewSubmissionRoutes(app.Group("/api"), uc, validate.DefaultLimits(), logger.New("disabled"))

	return app
}

func uploadRequest(t *testing.T, filenames ...string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", "Ada"))
	require.NoError(t, w.WriteField("socialHandle", "ada"))
	require.NoError(t, w.WriteField("socialPlatform", "github"))
	for _, name := range filenames {
		part, err := w.CreateFormFile(validate.ImagesField, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	return req
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var e struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &e)

	return resp.StatusCode, e.Error
}

func TestCreateStagesFilesInOrder(t *testing.T) {
	uc := &stubUseCase{}
	app := newApp(uc)

	code, _ := send(t, app, uploadRequest(t, "b.png", "a.jpeg"))
	require.Equal(t, http.StatusCreated, code)

	require.Equal(t, "Ada", uc.got.Name)
	require.Equal(t, "ada", uc.got.SocialHandle)
	require.Equal(t, "github", uc.got.SocialPlatform)
	require.Len(t, uc.got.Files, 2)
	require.Equal(t, "b.png", uc.got.Files[0].Filename)
	require.Equal(t, []byte("b.png"), uc.got.Files[0].Data)
	require.Equal(t, int64(5), uc.got.Files[0].Size)
	require.Equal(t, "a.jpeg", uc.got.Files[1].Filename)
}

func TestCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "validation",
			err:     fmt.Errorf("wrapped: %w", errs.NewValidationError("name is required")),
			code:    http.StatusBadRequest,
			message: "name is required",
		},
		{
			name:    "storage",
			err:     fmt.Errorf("%w: %w", errs.ErrStorage, errors.New("s3 down")),
			code:    http.StatusInternalServerError,
			message: "Failed to upload image to storage",
		},
		{
			name:    "database",
			err:     errors.New("mongo down"),
			code:    http.StatusInternalServerError,
			message: "Failed to save submission",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(&stubUseCase{createErr: tt.err})

			code, msg := send(t, app, uploadRequest(t, "a.png"))
			require.Equal(t, tt.code, code)
			require.Equal(t, tt.message, msg)
		})
	}
}

func TestCreateRejectsBeforeUseCase(t *testing.T) {
	uc := &stubUseCase{}
	app := newApp(uc)

	code, msg := send(t, app, uploadRequest(t, "a.png", "b.bmp"))
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Only image files are allowed!", msg)
	require.Empty(t, uc.got.Files)
}

func TestListAndDeleteErrors(t *testing.T) {
	app := newApp(&stubUseCase{
		listErr:   errors.New("db down"),
		deleteErr: fmt.Errorf("lookup: %w", errs.ErrRecordNotFound),
	})

	code, msg := send(t, app, httptest.NewRequest(http.MethodGet, "/api/submissions", nil))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "Failed to fetch submissions", msg)

	code, msg = send(t, app, httptest.NewRequest(http.MethodDelete, "/api/submissions/abc", nil))
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Submission not found", msg)

	app = newApp(&stubUseCase{deleteErr: errors.New("db down")})
	code, msg = send(t, app, httptest.NewRequest(http.MethodDelete, "/api/submissions/abc", nil))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "Failed to delete submission", msg)
}
