// Package detector identifies a medicine from a photo
//
// Two variants exist. HTTP posts the photo to a model server; Stub picks a
// random catalog id so the rest of the flow can run without one
package detector

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"pillbox/internal/platform/config"
)

// Image is an uploaded photo
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Result is the model's best guess; Score is a confidence in [0, 1]
type Result struct {
	ID    int64
	Name  string
	Score float64
}

// Detector identifies the medicine in an image
type Detector interface {
	Detect(ctx context.Context, img Image) (Result, error)
}

// Mode values for CORE_DETECT_MODE
const (
	ModeHTTP = "http"
	ModeStub = "stub"
)

// Config selects and tunes a Detector
type Config struct {
	Mode       string
	URL        string
	Timeout    time.Duration
	MaxRetries int
	MinScore   int
	MaxUpload  int64

	// MaxInFlight caps concurrent detection requests per process
	MaxInFlight int
}

// FromConfig reads the CORE_DETECT_ keys
func FromConfig(cfg config.Conf) Config {
	c := cfg.Prefix("CORE_DETECT_")
	out := Config{
		Mode:       strings.ToLower(c.MayEnum("MODE", ModeStub, ModeHTTP, ModeStub)),
		Timeout:    c.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries: c.MayInt("MAX_RETRIES", defaultMaxRetry),
		MinScore:   c.MayInt("MIN_SCORE", 70),
		MaxUpload:  int64(c.MayInt("MAX_UPLOAD_MB", 10)) << 20,

		MaxInFlight: c.MayInt("MAX_IN_FLIGHT", 8),
	}
	if out.Mode == ModeHTTP {
		out.URL = c.MustString("URL")
	}
	return out
}

// New builds the Detector named by cfg.Mode
func New(cfg Config) Detector {
	if cfg.Mode == ModeHTTP {
		return NewHTTP(HTTPOptions{URL: cfg.URL, Timeout: cfg.Timeout, MaxRetries: cfg.MaxRetries})
	}
	return NewStub(StubCatalogSize)
}

// StubCatalogSize is the id range the stub draws from
const StubCatalogSize = 50000

// Stub returns a random id in [1, n] with full confidence
type Stub struct {
	n    int64
	rand func(int64) int64
}

// NewStub builds a Stub over ids 1..n
func NewStub(n int64) *Stub {
	if n <= 0 {
		n = StubCatalogSize
	}
	return &Stub{n: n, rand: rand.Int64N}
}

// Detect ignores the image
func (s *Stub) Detect(ctx context.Context, _ Image) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{ID: s.rand(s.n) + 1, Score: 1}, nil
}
