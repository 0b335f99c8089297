// Package sanitize strips unsafe markup from user-supplied content before it
// is persisted. Rich-text fields (bio, descriptions) keep basic formatting;
// everything else is reduced to plain text.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// HTML sanitizes rich text, keeping the tags allowed for user-generated
// content.
func HTML(s string) string {
	return ugc.Sanitize(s)
}

// Text strips all markup.
func Text(s string) string {
	return strict.Sanitize(s)
}
