package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a business-rule failure. The HTTP boundary maps kinds to
// status codes; nothing below it knows about transport.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnprocessable
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnprocessable:
		return "unprocessable"
	}
	return "unknown"
}

// FieldError names one invalid input field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is the only error type services return for expected failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
}

func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches another *Error with the same kind and message, so package level
// sentinels work with errors.Is even when the instance was copied.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func BadRequest(msg string) *Error   { return NewError(KindBadRequest, msg) }
func Unauthorized(msg string) *Error { return NewError(KindUnauthorized, msg) }
func Forbidden(msg string) *Error    { return NewError(KindForbidden, msg) }
func NotFound(msg string) *Error     { return NewError(KindNotFound, msg) }
func Conflict(msg string) *Error     { return NewError(KindConflict, msg) }

// Unprocessable reports structured validation failures.
func Unprocessable(msg string, fields []FieldError) *Error {
	return &Error{Kind: KindUnprocessable, Message: msg, Fields: fields}
}

// KindOf returns the kind of err, or 0 if err is not a *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
