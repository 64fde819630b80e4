package validate

import "strings"

const (
	MaxFiles    int   = 5
	MaxFileSize int64 = 10 * 1024 * 1024

	// ImagesField is the only multipart field files may be attached under.
	ImagesField = "images"
)

// AllowedExtensions are matched as case-sensitive filename suffixes.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

type Limits struct {
	MaxFiles    int
	MaxFileSize int64
}

func DefaultLimits() Limits {
	return Limits{MaxFiles: MaxFiles, MaxFileSize: MaxFileSize}
}

func HasAllowedExtension(filename string) bool {
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}

	return false
}
