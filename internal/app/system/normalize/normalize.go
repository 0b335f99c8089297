// Package normalize holds small canonicalization helpers applied before
// values are persisted or compared.
package normalize

import "strings"

// Email lowercases and trims an email address for case-insensitive matching.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Platform canonicalizes a social-link platform name ("GitHub " -> "github").
func Platform(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Text trims surrounding whitespace from free-form input.
func Text(s string) string {
	return strings.TrimSpace(s)
}
