package services

import (
	"math/rand"
	"strings"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// generateSlug builds a URL-safe identifier from the title plus six random
// base36 characters. The suffix only lowers the odds of a collision between
// articles sharing a title; uniqueness is enforced by the slug index, and a
// violation there surfaces as a conflict.
func generateSlug(title string) string {
	return slugify(title) + "-" + randomSuffix(6)
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}
