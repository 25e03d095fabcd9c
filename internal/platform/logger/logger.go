// Package logger owns the process zerolog root and request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"pillbox/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level   string
	Console bool
	Service string
	Caller  bool
	Writer  io.Writer
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT (console|json), LOG_SERVICE and LOG_CALLER
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:   env.Get("LEVEL", "debug"),
		Console: !strings.EqualFold(env.Get("FORMAT", "console"), "json"),
		Service: env.Get("SERVICE", ""),
		Caller:  env.GetBool("CALLER", false),
	}
}

var root atomic.Pointer[Logger]

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New builds a logger from opt without touching the root
func New(opt Options) *Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	name := strings.ToLower(strings.TrimSpace(opt.Level))
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		lvl = zerolog.DebugLevel
	}

	b := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Service != "" {
		b = b.Str("service", opt.Service)
	}
	if opt.Caller {
		b = b.Caller()
	}
	l := b.Logger()
	return &l
}

// Init replaces the root logger and returns it
func Init(opt Options) *Logger {
	l := New(opt)
	root.Store(l)
	return l
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	root.CompareAndSwap(nil, New(FromEnv()))
	return root.Load()
}

// Named returns a child tagged with component
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey int

const (
	requestIDKey ctxKey = iota
	memberIDKey
)

// WithRequest stores the request and member ids that C attaches to every line
// empty values are skipped
func WithRequest(ctx context.Context, requestID, memberID string) context.Context {
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
	}
	if memberID != "" {
		ctx = context.WithValue(ctx, memberIDKey, memberID)
	}
	return ctx
}

// C returns the root logger enriched with the ids carried by ctx
func C(ctx context.Context) *Logger {
	b := Get().With()
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		b = b.Str("request_id", v)
	}
	if v, ok := ctx.Value(memberIDKey).(string); ok {
		b = b.Str("member_id", v)
	}
	l := b.Logger()
	return &l
}
