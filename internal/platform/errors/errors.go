// Package errors is the project error type: a machine code, a stable client
// facing name, a message and an optional field, wrapping an optional cause
//
// import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for status mapping; values are on the wire
type ErrorCode uint16

// Codes; append only
const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	ErrorCodeUnavailable
	ErrorCodeTooManyRequests
	ErrorCodeConflict
	ErrorCodeUnauthorized
	ErrorCodeForbidden
	ErrorCodeInvalidArgument
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeDuplicateKey
	ErrorCodeDB
)

type codeInfo struct {
	status int
	name   string
}

var codes = map[ErrorCode]codeInfo{
	ErrorCodePanic:           {http.StatusInternalServerError, "PANIC"},
	ErrorCodeUnavailable:     {http.StatusServiceUnavailable, "UNAVAILABLE"},
	ErrorCodeTooManyRequests: {http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
	ErrorCodeConflict:        {http.StatusConflict, "CONFLICT"},
	ErrorCodeUnauthorized:    {http.StatusUnauthorized, "UNAUTHORIZED"},
	ErrorCodeForbidden:       {http.StatusForbidden, "FORBIDDEN"},
	ErrorCodeInvalidArgument: {http.StatusUnprocessableEntity, "INVALID_ARGUMENT"},
	ErrorCodeValidation:      {http.StatusBadRequest, "VALIDATION_ERROR"},
	ErrorCodeJSON:            {http.StatusBadRequest, "VALIDATION_ERROR"},
	ErrorCodeNotFound:        {http.StatusNotFound, "NOT_FOUND"},
	ErrorCodeDuplicateKey:    {http.StatusConflict, "ALREADY_EXIST"},
	ErrorCodeDB:              {http.StatusInternalServerError, "DB_ERROR"},
}

var unknown = codeInfo{http.StatusInternalServerError, "INTERNAL_ERROR"}

func info(c ErrorCode) codeInfo {
	if i, ok := codes[c]; ok {
		return i
	}
	return unknown
}

// HTTPStatusCode maps c to a response status; unmapped codes are 500
func HTTPStatusCode(c ErrorCode) int { return info(c).status }

// ErrNotFound is the generic not found error
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is the structured error; build it with the constructors below
type Error struct {
	code  ErrorCode
	name  string
	msg   string
	field string
	cause error
}

// Wire is the error object inside the response envelope
type Wire struct {
	Code       ErrorCode `json:"code"`
	Name       string    `json:"name"`
	HTTPStatus int       `json:"httpStatus"`
	Message    string    `json:"message"`
	Field      string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches another *Error with the same name and code, so a copy made by
// WithField or WithCause still matches its sentinel; unnamed errors match by identity
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if e.name == "" || t.name == "" {
		return e == t
	}
	return e.name == t.name && e.code == t.code
}

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Name is the explicit name, else the default for the code
func (e *Error) Name() string {
	if e.name != "" {
		return e.name
	}
	return info(e.code).name
}

// Field is the offending input field, "" when none
func (e *Error) Field() string { return e.field }

// ToWire renders e for the response envelope
func (e *Error) ToWire() Wire {
	return Wire{
		Code:       e.code,
		Name:       e.Name(),
		HTTPStatus: HTTPStatusCode(e.code),
		Message:    e.msg,
		Field:      e.field,
	}
}

// WireFrom renders any error; foreign errors become INTERNAL_ERROR and nil the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Name: unknown.name, HTTPStatus: unknown.status, Message: err.Error()}
}

// As finds the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// Root follows Unwrap to the innermost cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// CodeOf is err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// NameOf is err's client facing name, "" for nil
func NameOf(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Name()
	}
	return unknown.name
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is the response status for err
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField returns a copy of err naming the offending field; foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// WithCause returns a copy of err wrapping cause, so a named sentinel can carry
// the driver error into logs; nil cause or a foreign err pass through
func WithCause(err, cause error) error {
	e, ok := As(err)
	if !ok || cause == nil {
		return err
	}
	c := *e
	c.cause = cause
	return &c
}

// New builds an unnamed error
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Named builds an error with a stable client facing name such as FAVORITE_NOT_EXIST
func Named(code ErrorCode, name, msg string) error { return &Error{code: code, name: name, msg: msg} }

// Newf is New with a format
func Newf(code ErrorCode, format string, a ...any) error { return New(code, fmt.Sprintf(format, a...)) }

// Wrap builds an unnamed error around cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// JSONErrf is a malformed body error (400)
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// Unauthorizedf is an authentication failure (401)
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

// Unavailablef is a dependency outage (503)
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Validationf is an input validation failure (400)
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// Internalf is an unclassified failure (500)
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// Retryable reports whether a postgres or redis failure is transient
func Retryable(err error) bool { return IsRetryable(err) || IsRedisRetryable(err) }
