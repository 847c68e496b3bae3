// Package apperr defines the error kinds shared by every handler: a caller
// omitted a required field, named a cuisine/tag that does not exist, targeted
// a document that does not exist, or the store itself failed. Handlers map
// these to HTTP statuses at the response boundary and nowhere else.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	MissingField Kind = iota
	InvalidReference
	NotFound
	StoreFailure
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap keeps the underlying cause for server-side logging while Msg stays
// safe to echo to the caller.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of err, or StoreFailure when err is not an *Error.
// Anything a handler cannot classify is an unexpected fault.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return StoreFailure
}

// Status maps an error to the HTTP status the contract promises: 400 for
// validation, 404 for missing documents, 500 for everything else.
func Status(err error) int {
	switch KindOf(err) {
	case MissingField, InvalidReference:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing text for err. Store failures are reported
// generically; their detail belongs in the server log only.
func Message(err error) string {
	if KindOf(err) == StoreFailure {
		return "internal server error"
	}
	var e *Error
	errors.As(err, &e)
	return e.Msg
}
