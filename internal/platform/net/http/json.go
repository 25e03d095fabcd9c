package http

import (
	"net/http"

	"pillbox/internal/platform/net/http/bind"
)

// JSONHandler binds the body into T with bind.ParseJSON, then runs fn
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return Result(fn(r, in))
	})
}

// Result turns a handler's (value, error) pair into a Response
// a value that already is a Response is used as is, anything else is a 200
func Result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
