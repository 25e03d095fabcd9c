package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "pillbox/internal/platform/errors"
	pnet "pillbox/internal/platform/net"

	"github.com/google/go-cmp/cmp"
)

func TestReply(t *testing.T) {
	got := pnet.Reply(http.StatusCreated, map[string]int{"id": 7}, "req-1")
	want := pnet.Envelope{StatusCode: 201, Status: "Created", RequestID: "req-1", Data: map[string]int{"id": 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Reply mismatch (-want +got):\n%s", diff)
	}
}

func TestFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		wire   *perr.Wire
	}{
		{
			name:   "named",
			err:    perr.Named(perr.ErrorCodeNotFound, "SEARCH_LOG_NOT_EXIST", "no recent searches"),
			status: http.StatusNotFound,
			wire:   &perr.Wire{Code: perr.ErrorCodeNotFound, Name: "SEARCH_LOG_NOT_EXIST", HTTPStatus: 404, Message: "no recent searches"},
		},
		{
			name:   "foreign",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			wire:   &perr.Wire{Code: perr.ErrorCodeUnknown, Name: "INTERNAL_ERROR", HTTPStatus: 500, Message: "boom"},
		},
		{name: "nil is ok", status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := pnet.Failure(tt.err, "req-9")
			if status != tt.status || env.StatusCode != tt.status || env.Status != http.StatusText(tt.status) {
				t.Fatalf("status = %d env = %+v", status, env)
			}
			if diff := cmp.Diff(tt.wire, env.Error); diff != "" {
				t.Fatalf("wire mismatch (-want +got):\n%s", diff)
			}
			if env.Data != nil || env.RequestID != "req-9" {
				t.Fatalf("envelope = %+v", env)
			}
		})
	}
}
