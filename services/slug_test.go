package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"Numbers 123 ok", "numbers-123-ok"},
		{"ArticleVersion 2.0", "articleversion-2-0"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.in), "slugify(%q)", tc.in)
	}
}

func TestGenerateSlugSuffix(t *testing.T) {
	pattern := regexp.MustCompile(`^hello-world-[0-9a-z]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		slug := generateSlug("Hello World")
		assert.Regexp(t, pattern, slug)
		seen[slug] = true
	}

	// The random suffix makes repeated titles overwhelmingly unlikely to
	// collide; with 20 draws out of 36^6 we expect all distinct.
	assert.Greater(t, len(seen), 1)
}
