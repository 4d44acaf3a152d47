// Package errors carries machine-readable codes on floor-plan errors so the
// CLI, the HTTP server and the table configuration form can each present a
// failure their own way.
//
// Every [Code] belongs to a [Kind]: the input was invalid, the thing asked for
// does not exist, or something broke. The server picks its response status
// from the kind; the CLI prints [UserMessage].
//
//	err := errors.New(errors.ErrCodeTableNotFound, "table %q not found", id)
//	errors.Is(err, errors.ErrCodeTableNotFound) // true
//	errors.KindOf(err)                          // errors.KindNotFound
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a failure.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidName     Code = "INVALID_NAME"
	ErrCodeInvalidCapacity Code = "INVALID_CAPACITY"
	ErrCodeInvalidElement  Code = "INVALID_ELEMENT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeTableNotFound Code = "TABLE_NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Kind groups codes by who is at fault.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
)

var kinds = map[Code]Kind{
	ErrCodeInvalidInput:    KindInvalid,
	ErrCodeInvalidName:     KindInvalid,
	ErrCodeInvalidCapacity: KindInvalid,
	ErrCodeInvalidElement:  KindInvalid,
	ErrCodeInvalidFormat:   KindInvalid,
	ErrCodeInvalidConfig:   KindInvalid,
	ErrCodeNotFound:        KindNotFound,
	ErrCodeTableNotFound:   KindNotFound,
	ErrCodeFileNotFound:    KindNotFound,
}

// Kind returns the kind of c. Unknown codes are internal.
func (c Code) Kind() Kind { return kinds[c] }

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an error with code and a formatted message that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost coded error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost coded error in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// KindOf returns the kind of err. Uncoded errors are internal.
func KindOf(err error) Kind {
	return GetCode(err).Kind()
}

// UserMessage returns the message of the outermost coded error without its
// code, or err.Error() for uncoded errors.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
