package api

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned by Login when the upstream rejects the
	// email/password pair. Handlers log it but show the same generic copy as
	// any other login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoBaseURL indicates the upstream base URL is not configured. All
	// calls fail closed with it rather than dialing an empty host.
	ErrNoBaseURL = errors.New("api base url is not configured")
)

// SessionError classifies a failed who-am-I check. It exists for diagnostics
// only: every kind is normalized to "no session" before it reaches the UI.
type SessionError struct {
	Kind   SessionErrorKind
	Status int
	Err    error
}

type SessionErrorKind string

const (
	SessionErrorNetwork   SessionErrorKind = "network"
	SessionErrorStatus    SessionErrorKind = "status"
	SessionErrorMalformed SessionErrorKind = "malformed"
)

func (e *SessionError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("session check failed (%s, status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("session check failed (%s): %v", e.Kind, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}
