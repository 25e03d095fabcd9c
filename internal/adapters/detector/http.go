package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"pillbox/internal/core/apierr"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"
	"pillbox/internal/platform/retry"

	"github.com/google/uuid"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxRetry  = 2
	defaultRetryBase = 300 * time.Millisecond
	maxBackoff       = 5 * time.Second

	// maxResponse bounds the model server reply
	maxResponse = 64 << 10
)

// HTTPOptions configures the HTTP detector
type HTTPOptions struct {
	URL        string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// HTTP posts the image as multipart field "image" and reads {id, name, scores}
type HTTP struct {
	http *http.Client
	opts HTTPOptions
	log  logger.Logger
	now  func() time.Time
}

type wireResult struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Scores float64 `json:"scores"`
}

// NewHTTP creates the HTTP detector with sane defaults
func NewHTTP(o HTTPOptions) *HTTP {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &HTTP{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("detector"),
		now:  time.Now,
	}
}

// Detect retries transport errors and 5xx answers with exponential backoff
// anything still failing is reported as DETECTOR_UNAVAILABLE
func (d *HTTP) Detect(ctx context.Context, img Image) (Result, error) {
	body, ctype, err := encode(img)
	if err != nil {
		return Result{}, perr.WithCause(apierr.ErrDetectorUnavailable, err)
	}
	reqID := uuid.NewString()

	var res Result
	attempt := 0
	policy := retry.Policy{Attempts: d.opts.MaxRetries + 1, Base: d.opts.RetryBase, Max: maxBackoff}
	err = retry.Do(ctx, policy, func() error {
		r, again, err := d.once(ctx, body, ctype, reqID, attempt)
		attempt++
		switch {
		case err == nil:
			res = r
			return nil
		case again:
			return err
		default:
			return retry.Permanent(err)
		}
	}, func(err error, wait time.Duration) {
		d.log.Warn().Err(err).Str("request_id", reqID).Int("attempt", attempt).Dur("retry_in", wait).Msg("detector call failed, retrying")
	})
	if err != nil {
		return Result{}, perr.WithCause(apierr.ErrDetectorUnavailable, err)
	}
	return res, nil
}

func (d *HTTP) once(ctx context.Context, body []byte, ctype, reqID string, attempt int) (Result, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.opts.URL, bytes.NewReader(body))
	if err != nil {
		return Result{}, false, err
	}
	req.Header.Set("Content-Type", ctype)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	start := d.now()
	resp, err := d.http.Do(req)
	lat := d.now().Sub(start)
	if err != nil {
		return Result{}, ctx.Err() == nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	d.log.Debug().
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Int("attempt", attempt).
		Dur("latency", lat).
		Msg("detector http response")

	switch {
	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return Result{}, true, perr.Newf(perr.ErrorCodeUnavailable, "detector status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, false, perr.Newf(perr.ErrorCodeUnknown, "detector status %d body %s", resp.StatusCode, string(tail))
	}

	var w wireResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponse)).Decode(&w); err != nil {
		return Result{}, false, perr.Wrap(err, perr.ErrorCodeJSON, "decode detector response")
	}
	return Result{ID: w.ID, Name: w.Name, Score: w.Scores}, false, nil
}

func encode(img Image) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	name := img.Filename
	if name == "" {
		name = "image"
	}
	part, err := mw.CreateFormFile("image", name)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(img.Data); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}
