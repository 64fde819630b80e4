package entity

type Platform string

const (
	Instagram Platform = "instagram"
	Facebook  Platform = "facebook"
	Twitter   Platform = "twitter"
	LinkedIn  Platform = "linkedin"
	YouTube   Platform = "youtube"
	GitHub    Platform = "github"
)

var platforms = []Platform{Instagram, Facebook, Twitter, LinkedIn, YouTube, GitHub}

// Platforms returns the accepted platforms in their canonical order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)

	return out
}

// ParsePlatform matches s exactly, values are case-sensitive.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range platforms {
		if string(p) == s {
			return p, true
		}
	}

	return "", false
}
