// Package apperr defines the closed set of error kinds the service can
// surface and the single place they are mapped to HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// InvalidRequest: input is malformed or violates a validation rule.
	InvalidRequest Kind = iota + 1
	// NotFound: a referenced entity does not exist.
	NotFound
	// InvalidState: the operation would violate a business invariant.
	InvalidState
	// Storage: the underlying persistence operation failed.
	Storage
)

func (k Kind) String() string {
	switch k {
	case InvalidRequest:
		return "invalid_request"
	case NotFound:
		return "not_found"
	case InvalidState:
		return "invalid_state"
	case Storage:
		return "storage"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind carried by err, or 0 for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Status maps an error to its transport status code. Unclassified errors
// are treated as storage failures.
func Status(err error) int {
	switch KindOf(err) {
	case InvalidRequest:
		return http.StatusUnprocessableEntity
	case NotFound:
		return http.StatusNotFound
	case InvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
