package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.png", true},
		{"anim.gif", true},
		{"archive.tar.png", true},
		{"PHOTO.JPG", false},
		{"photo.Png", false},
		{"photo.webp", false},
		{"virus.exe", false},
		{"png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			require.Equal(t, tt.want, HasAllowedExtension(tt.filename))
		})
	}
}

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()

	require.Equal(t, 5, l.MaxFiles)
	require.Equal(t, int64(10485760), l.MaxFileSize)
}
