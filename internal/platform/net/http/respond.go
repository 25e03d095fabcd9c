// Package http is the JSON transport: the chi backed router, the server and
// return-style handlers that write the shared response envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"
	pnet "pillbox/internal/platform/net"
)

// Envelope is the response body shape
type Envelope = pnet.Envelope

// JSON writes v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return-style handlers produce
// an error Body becomes an error envelope with the status its code maps to
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a return-style handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		status, env := pnet.Failure(err, reqID)
		if status >= stdhttp.StatusInternalServerError {
			logger.C(r.Context()).Error().Err(err).Str("error_name", perr.NameOf(err)).Str("path", r.URL.Path).Msg("request failed")
		}
		JSON(w, status, env)
		return
	}

	switch resp.Status {
	case stdhttp.StatusNoContent:
		w.WriteHeader(stdhttp.StatusNoContent)
	case 0:
		JSON(w, stdhttp.StatusOK, pnet.Reply(stdhttp.StatusOK, resp.Body, reqID))
	default:
		JSON(w, resp.Status, pnet.Reply(resp.Status, resp.Body, reqID))
	}
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 carrying data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent is a bodiless 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error maps err to its status and error envelope
func Error(err error) Response { return Response{Body: err} }
