// Package fetch implements the local/remote fallback policy applied by every
// list-serving handler: a non-empty remote result is served as-is; an empty
// result or a fetch error is replaced wholesale by the local fallback list.
// The two degraded cases render identically, so the resolved Source tag is
// the only way to tell them apart (it is surfaced in a response header for
// tests and diagnostics, never merged into the payload).
//
// Each fetch is attempted exactly once per request. No retry, no backoff.
package fetch

// Source records where a resolved list came from.
type Source string

const (
	// SourceRemote means the remote collection returned a non-empty list.
	SourceRemote Source = "remote"
	// SourceFallback means the remote collection was empty.
	SourceFallback Source = "fallback"
	// SourceError means the remote fetch failed.
	SourceError Source = "error"
)

// HeaderSource is the response header carrying the Source tag.
const HeaderSource = "X-Content-Source"

// Resolve applies the fallback policy to a fetch result. The fallback list
// is substituted wholesale, never merged.
func Resolve[T any](items []T, err error, fallback []T) ([]T, Source) {
	if err != nil {
		return fallback, SourceError
	}
	if len(items) == 0 {
		return fallback, SourceFallback
	}
	return items, SourceRemote
}
