package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("not a json line: %v (%q)", err, buf.String())
	}
	return m
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "pillbox-api")
	t.Setenv("LOG_CALLER", "yes")

	want := Options{Level: "warn", Console: false, Service: "pillbox-api", Caller: true}
	if got := FromEnv(); got != want {
		t.Fatalf("FromEnv = %+v, want %+v", got, want)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "LOG_SERVICE", "LOG_CALLER"} {
		t.Setenv(k, "")
	}
	want := Options{Level: "debug", Console: true}
	if got := FromEnv(); got != want {
		t.Fatalf("FromEnv = %+v, want %+v", got, want)
	}
}

func TestNew_Levels(t *testing.T) {
	tests := map[string]zerolog.Level{
		"info":    zerolog.InfoLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.DebugLevel,
		"verbose": zerolog.DebugLevel,
	}
	for in, want := range tests {
		if got := New(Options{Level: in, Writer: &bytes.Buffer{}}).GetLevel(); got != want {
			t.Fatalf("level(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: "info", Service: "pillbox-admin", Writer: &buf}).Info().Msg("ready")

	m := decode(t, &buf)
	if m["service"] != "pillbox-admin" || m["message"] != "ready" || m["level"] != "info" {
		t.Fatalf("fields = %v", m)
	}
}

func TestNew_ConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: "info", Console: true, Writer: &buf}).Info().Str("k", "v").Msg("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) || !bytes.Contains(buf.Bytes(), []byte("k=v")) {
		t.Fatalf("console output = %q", buf.String())
	}
}

func TestContextChildren(t *testing.T) {
	var buf bytes.Buffer
	prev := root.Swap(New(Options{Level: "debug", Writer: &buf}))
	t.Cleanup(func() { root.Store(prev) })

	ctx := WithRequest(context.Background(), "req-1", "42")
	C(ctx).Info().Msg("with ids")
	m := decode(t, &buf)
	if m["request_id"] != "req-1" || m["member_id"] != "42" {
		t.Fatalf("ids missing: %v", m)
	}

	buf.Reset()
	C(WithRequest(context.Background(), "", "")).Info().Msg("bare")
	m = decode(t, &buf)
	if _, ok := m["request_id"]; ok {
		t.Fatalf("empty request id must be skipped: %v", m)
	}

	buf.Reset()
	Named("indexer").Info().Msg("named")
	if m = decode(t, &buf); m["component"] != "indexer" {
		t.Fatalf("component = %v", m["component"])
	}
}

func TestInit_ReplacesRoot(t *testing.T) {
	prev := root.Load()
	t.Cleanup(func() { root.Store(prev) })

	l := Init(Options{Level: "error", Writer: &bytes.Buffer{}})
	if Get() != l {
		t.Fatalf("Get did not return the Init logger")
	}
}
