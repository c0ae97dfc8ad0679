package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// StatusError carries the HTTP status of a failed upstream call
// wrap it with Upstreamf so callers can branch on both code and status
type StatusError struct {
	Status int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d %s", e.Status, http.StatusText(e.Status))
}

// Upstreamf returns an ErrorCodeUpstream error wrapping the given status
func Upstreamf(status int, format string, a ...any) error {
	return Wrapf(&StatusError{Status: status}, ErrorCodeUpstream, format, a...)
}

// UpstreamStatus extracts the upstream HTTP status from err, 0 if absent
func UpstreamStatus(err error) int {
	var se *StatusError
	if stderrs.As(err, &se) {
		return se.Status
	}
	return 0
}

// IsTransient reports whether err is an upstream error worth retrying by a caller
// the helper itself never retries
func IsTransient(err error) bool {
	switch UpstreamStatus(err) {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
