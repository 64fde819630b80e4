package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
		ok   bool
	}{
		{"instagram", Instagram, true},
		{"facebook", Facebook, true},
		{"twitter", Twitter, true},
		{"linkedin", LinkedIn, true},
		{"youtube", YouTube, true},
		{"github", GitHub, true},
		{"mastodon", "", false},
		{"GitHub", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePlatform(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPlatformsReturnsCopy(t *testing.T) {
	ps := Platforms()
	require.Len(t, ps, 6)

	ps[0] = "mastodon"
	require.Equal(t, Instagram, Platforms()[0])
}
