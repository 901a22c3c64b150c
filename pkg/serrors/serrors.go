// Package serrors defines semantic error kinds shared by the converter's
// front-ends. A kind tells a transport layer how to report an error (HTTP
// status, CLI exit message) without it knowing where the error came from.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by every sentinel created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind. The name doubles as the
// machine-readable code reported to API clients.
func NewKind(name string) Kind { return kind{s: name} }

// Generic kinds. Packages with their own vocabulary (see domain) declare
// further kinds with NewKind.
var (
	// ErrBadRequest indicates the caller sent input that could not be parsed.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrUnprocessable indicates well-formed input that cannot be acted upon.
	ErrUnprocessable = NewKind("UNPROCESSABLE")
	// ErrInternal indicates a fault on our side.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a kind, an optional message and an optional cause.
//
// errors.Is and errors.As match either the kind or anything in the cause chain.
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name, in
// that order of preference.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k around err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the kind of e or appears in its cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As extracts either the kind or a value from the cause chain into target.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to e.
func (e *Error) Message() string { return e.msg }

// KindOf returns the first kind found in err's chain, or ErrInternal when the
// chain holds none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the message of the first *Error in err's chain that has
// one, or the empty string.
func MessageOf(err error) string {
	for err != nil {
		var se *Error
		if !errors.As(err, &se) {
			return ""
		}
		if se.msg != "" {
			return se.msg
		}
		err = se.err
	}

	return ""
}
