package tmdb

import (
	"errors"
	"fmt"
)

// ErrMissingToken means the upstream bearer credential is not configured.
// It is checked before any network call is attempted.
var ErrMissingToken = errors.New("tmdb bearer token not configured")

// Upstream error classes. The proxy handler maps each class to the HTTP
// semantics the client contract requires.
const (
	ClassNotFound    = "not_found"    // upstream 404
	ClassRateLimited = "rate_limited" // upstream 429
	ClassUnavailable = "unavailable"  // upstream 5xx
	ClassNetwork     = "network"      // transport failure, no status
	ClassOther       = "other"        // any other non-OK status
)

// UpstreamError carries the classification and original status of a failed
// upstream call.
type UpstreamError struct {
	Class  string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("tmdb: %s", e.Class)
	}
	return fmt.Sprintf("tmdb: %s (status %d)", e.Class, e.Status)
}

// classify buckets a non-OK upstream status code.
func classify(status int) string {
	switch {
	case status == 404:
		return ClassNotFound
	case status == 429:
		return ClassRateLimited
	case status >= 500:
		return ClassUnavailable
	default:
		return ClassOther
	}
}
