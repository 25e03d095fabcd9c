package strings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"*"}
	if got := IfEmpty(nil, def); !cmp.Equal(got, def) {
		t.Fatalf("nil input: got %v", got)
	}
	in := []string{"https://pillbox.example"}
	if got := IfEmpty(in, def); !cmp.Equal(got, in) {
		t.Fatalf("non-empty input: got %v", got)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: want panic", name)
		}
	}()
	fn()
}

func TestMustString(t *testing.T) {
	if got := MustString("favorites", "name"); got != "favorites" {
		t.Fatalf("want favorites got %q", got)
	}
	mustPanic(t, "blank", func() { _ = MustString(" \t", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"/favorites/":   "/favorites",
		" members  ":    "/members",
		"//search-logs": "/search-logs",
		"/api/v1/":      "/api/v1",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Errorf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"/", "", " // "} {
		mustPanic(t, in, func() { _ = MustPrefix(in) })
	}
}
