// Package httpkit is what feature modules build their routes from: handler
// adapters, bearer auth and the mount helpers over the platform router
package httpkit

import (
	"net/http"

	phttp "pillbox/internal/platform/net/http"
	"pillbox/internal/platform/net/http/bind"
)

type (
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// Created is a 201 carrying data
func Created(data any) Response { return phttp.Created(data) }

// NoContent is a bare 204
func NoContent() Response { return phttp.NoContent() }

// JSON binds and validates a JSON body into T before fn runs
// unknown fields, malformed bodies and failed tags are all 400
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call adapts a handler that reads nothing from the body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		out, err := fn(r)
		return phttp.Result(out, err)
	})
}

// Param is the trimmed path parameter name
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// ParamInt64 is a positive integer path parameter
func ParamInt64(r *http.Request, name string) (int64, error) { return phttp.ParamInt64(r, name) }

// Query binds and validates the query string into T
func Query[T any](r *http.Request) (T, error) { return bind.ParseQuery[T](r) }
