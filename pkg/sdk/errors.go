package sdk

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call so callers can decide how to present it.
type Kind string

const (
	// KindValidation means the request was rejected locally before any
	// network call was made.
	KindValidation Kind = "validation"
	// KindAuthorization is a 401/403-class failure that survived the
	// refresh cycle (or was never eligible for it).
	KindAuthorization Kind = "authorization"
	// KindTransport means no response reached the client at all.
	KindTransport Kind = "transport"
	// KindServer is any other error status, carrying the server-supplied
	// message when one was present.
	KindServer Kind = "server"
	// KindSessionExpired is terminal: the refresh protocol was exhausted
	// and the session has already been driven to Unauthenticated.
	KindSessionExpired Kind = "session_expired"
)

// Sentinels for errors.Is checks.
var (
	ErrSessionExpired = errors.New("session expired, please sign in again")
	ErrNotAllowed     = errors.New("role is not allowed to access this route")
)

// Error is the typed failure surfaced by every client in this package.
type Error struct {
	Kind    Kind
	Message string
	// Status is the HTTP status code, when a response was received.
	Status int
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrSessionExpired) work without callers digging
// for the concrete type.
func (e *Error) Is(target error) bool {
	return target == ErrSessionExpired && e.Kind == KindSessionExpired
}

// IsSessionExpired reports whether err represents refresh exhaustion.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

func validationError(err error) *Error {
	return &Error{Kind: KindValidation, Message: err.Error(), Err: err}
}

func transportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: "no response from server, please try again later",
		Err:     err,
	}
}

func sessionExpiredError(cause error) *Error {
	return &Error{
		Kind:    KindSessionExpired,
		Message: ErrSessionExpired.Error(),
		Err:     cause,
	}
}
