package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a service failure.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindInvalidFile
	KindUnauthorized
	KindNotFound
	KindConflict
)

// Error is the error type returned across the service boundary.
// Message is safe to return to callers, Err is the internal cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to the HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindInvalidFile:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func InvalidFile(msg string) *Error {
	return &Error{Kind: KindInvalidFile, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Internal wraps an unexpected failure, keeping the cause for logging.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsInvalidInput reports whether err rejects the caller's input, files included.
func IsInvalidInput(err error) bool {
	kind := KindOf(err)
	return kind == KindInvalidInput || kind == KindInvalidFile
}
