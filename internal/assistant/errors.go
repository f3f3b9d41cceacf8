package assistant

import (
	"errors"
	"fmt"
)

// ErrUnavailable means no assistant credential is configured
var ErrUnavailable = errors.New("assistant not configured")

// Error is a failed assistant call
type Error struct {
	Profile    string
	StatusCode int // HTTP status when the API answered, 0 otherwise
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("assistant %s call failed (status %d): %v", e.Profile, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("assistant %s call failed: %v", e.Profile, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// statusError carries the HTTP status reported by a provider
type statusError struct {
	code int
	err  error
}

func (e *statusError) Error() string { return e.err.Error() }

func (e *statusError) Unwrap() error { return e.err }
