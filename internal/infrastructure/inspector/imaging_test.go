package inspector

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestImageInspector(t *testing.T) {
	valid := pngBytes(t)

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"real png", valid, false},
		{"text renamed to png", []byte("MZ this is not an image"), true},
		{"truncated png", valid[:len(valid)/2], true},
		{"empty", nil, true},
	}

	i := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := i.Inspect(context.Background(), dto.UploadFile{Filename: "a.png", Data: tt.data})
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrValidation)

			var ve *errs.ValidationError
			require.True(t, errors.As(err, &ve))
			require.Equal(t, "File content is not a supported image", ve.Message)
		})
	}
}

func TestNopInspectorAcceptsAnything(t *testing.T) {
	require.NoError(t, NewNop().Inspect(context.Background(), dto.UploadFile{Data: []byte("not an image")}))
}
