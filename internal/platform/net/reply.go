package net

import (
	"net/http"

	perr "pillbox/internal/platform/errors"
)

// Envelope is the body of every JSON response
// exactly one of Error and Data is set
type Envelope struct {
	StatusCode int        `json:"status_code"`
	Status     string     `json:"status"`
	Error      *perr.Wire `json:"error,omitempty"`
	RequestID  string     `json:"request_id,omitempty"`
	Data       any        `json:"data,omitempty"`
}

// Reply wraps data for a successful status
func Reply(status int, data any, reqID string) Envelope {
	return Envelope{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// Failure renders err and returns the status its code maps to
func Failure(err error, reqID string) (int, Envelope) {
	if err == nil {
		return http.StatusOK, Reply(http.StatusOK, nil, reqID)
	}
	w := perr.WireFrom(err)
	env := Reply(w.HTTPStatus, nil, reqID)
	env.Error = &w
	return w.HTTPStatus, env
}
