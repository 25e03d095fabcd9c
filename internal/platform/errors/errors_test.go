package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeConflict:        http.StatusConflict,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeUnauthorized:    http.StatusUnauthorized,
		ErrorCodeForbidden:       http.StatusForbidden,
		ErrorCodeTooManyRequests: http.StatusTooManyRequests,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeUnknown:         http.StatusInternalServerError,
		9999:                     http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", code, got, want)
		}
	}
}

func TestError_RenderAndUnwrap(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	if got := Newf(ErrorCodeJSON, "bad json at %d", 12).Error(); got != "bad json at 12" {
		t.Fatalf("Newf render = %q", got)
	}

	src := stderrs.New("conn reset")
	wrapped := Wrap(src, ErrorCodeDB, "load medicine")
	if wrapped.Error() != "load medicine: conn reset" {
		t.Fatalf("Wrap render = %q", wrapped.Error())
	}
	if !stderrs.Is(wrapped, src) || CodeOf(wrapped) != ErrorCodeDB {
		t.Fatalf("Wrap lost cause or code")
	}
	if HTTPStatus(wrapped) != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(db) = %d", HTTPStatus(wrapped))
	}

	deep := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", wrapped))
	if Root(deep) != src {
		t.Fatalf("Root = %v", Root(deep))
	}
	if e, ok := As(deep); !ok || e.Code() != ErrorCodeDB {
		t.Fatalf("As through fmt wrapping failed")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As matched a foreign error")
	}
}

func TestWithField_CopyOnWrite(t *testing.T) {
	base := Validationf("page must be positive")
	tagged := WithField(base, "page")

	if e, _ := As(tagged); e.Field() != "page" {
		t.Fatalf("field = %q", e.Field())
	}
	if e, _ := As(base); e.Field() != "" {
		t.Fatalf("original mutated: %q", e.Field())
	}
	foreign := stderrs.New("x")
	if WithField(foreign, "page") != foreign {
		t.Fatalf("foreign error should pass through")
	}
}

func TestWire(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}

	w := WireFrom(WithField(Wrap(stderrs.New("token expired"), ErrorCodeUnauthorized, "bad token"), "authorization"))
	want := Wire{Code: ErrorCodeUnauthorized, Name: "UNAUTHORIZED", HTTPStatus: http.StatusUnauthorized, Message: "bad token", Field: "authorization"}
	if w != want {
		t.Fatalf("WireFrom = %+v, want %+v", w, want)
	}

	if w := WireFrom(stderrs.New("boom")); w.Code != ErrorCodeUnknown || w.Name != "INTERNAL_ERROR" || w.Message != "boom" {
		t.Fatalf("WireFrom(foreign) = %+v", w)
	}
}

func TestSugarCodes(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{JSONErrf("x"), ErrorCodeJSON},
		{Unauthorizedf("x"), ErrorCodeUnauthorized},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{Validationf("x"), ErrorCodeValidation},
		{Internalf("x"), ErrorCodeUnknown},
		{ErrNotFound, ErrorCodeNotFound},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("%v: code = %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
}

func TestNamedErrors(t *testing.T) {
	notExist := Named(ErrorCodeNotFound, "FAVORITE_NOT_EXIST", "no favorites yet")
	noPerm := Named(ErrorCodeForbidden, "FAVORITE_NO_PERMISSION", "not yours")

	if NameOf(notExist) != "FAVORITE_NOT_EXIST" || HTTPStatus(notExist) != http.StatusNotFound {
		t.Fatalf("named error mismatch: %s %d", NameOf(notExist), HTTPStatus(notExist))
	}
	if NameOf(nil) != "" || NameOf(stderrs.New("x")) != "INTERNAL_ERROR" {
		t.Fatalf("NameOf fallbacks wrong")
	}
	if NameOf(New(ErrorCodeNotFound, "x")) != "NOT_FOUND" {
		t.Fatalf("unnamed errors should derive a name from the code")
	}

	tagged := WithField(notExist, "page")
	if !stderrs.Is(tagged, notExist) || !stderrs.Is(fmt.Errorf("svc: %w", tagged), notExist) {
		t.Fatalf("copies should match their sentinel")
	}
	if stderrs.Is(notExist, noPerm) {
		t.Fatalf("different names must not match")
	}

	a, b := New(ErrorCodeDB, "x"), New(ErrorCodeDB, "x")
	if stderrs.Is(a, b) {
		t.Fatalf("distinct unnamed errors must not match")
	}

	cause := stderrs.New("pg down")
	withCause := WithCause(noPerm, cause)
	if !stderrs.Is(withCause, noPerm) || !stderrs.Is(withCause, cause) {
		t.Fatalf("WithCause should match both sentinel and cause")
	}
	if w := WireFrom(withCause); w.Message != "not yours" || w.Name != "FAVORITE_NO_PERMISSION" || w.HTTPStatus != http.StatusForbidden {
		t.Fatalf("WithCause wire mismatch: %+v", w)
	}
	if WithCause(noPerm, nil) != noPerm {
		t.Fatalf("WithCause(nil) should return the sentinel unchanged")
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(stderrs.New("ERROR: deadlock detected (SQLSTATE 40P01)")) {
		t.Fatalf("pg deadlock text should be retryable")
	}
	if !Retryable(stderrs.New("LOADING Redis is loading the dataset in memory")) {
		t.Fatalf("redis loading should be retryable")
	}
	if Retryable(stderrs.New("relation medicines does not exist")) {
		t.Fatalf("missing relation is permanent")
	}
}
