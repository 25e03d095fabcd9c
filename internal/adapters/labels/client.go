// Package labels fetches package insert text for a medicine from the public drug label service
//
// Each medicine code has three sections. A section that cannot be fetched is
// reported as empty text so a detail page still renders without it
package labels

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"pillbox/internal/platform/logger"
)

const (
	baseURLDefault = "https://nedrug.mfds.go.kr/pbp/cmn/html/drb"
	defaultTimeout = 5 * time.Second
	defaultUA      = "pillbox-labels"

	// maxBody bounds one section; inserts are small html fragments
	maxBody = 2 << 20
)

// Section names one part of a package insert
type Section string

const (
	// Effect is the efficacy section
	Effect Section = "EE"
	// Usage is the dosage section
	Usage Section = "UD"
	// Precautions is the warnings section
	Precautions Section = "NB"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Disabled makes every fetch return empty text without a request
	Disabled bool
}

// Sections is the text of all three sections of one insert
type Sections struct {
	Effect      string
	Usage       string
	Precautions string
}

// Client fetches insert sections over http
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("labels"),
		now:  time.Now,
	}
}

// Fetch returns the text of one section, "" on any failure
func (c *Client) Fetch(ctx context.Context, code string, s Section) string {
	code = strings.TrimSpace(code)
	if c.opts.Disabled || code == "" {
		return ""
	}
	target := c.opts.BaseURL + "/" + url.PathEscape(code) + "/" + string(s)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.log.Warn().Err(err).Str("code", code).Str("section", string(s)).Msg("labels new request failed")
		return ""
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.log.Warn().Err(err).Str("code", code).Str("section", string(s)).Dur("latency", lat).Msg("labels fetch failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		c.log.Warn().Int("status", resp.StatusCode).Str("code", code).Str("section", string(s)).Msg("labels unexpected status")
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		c.log.Warn().Err(err).Str("code", code).Str("section", string(s)).Msg("labels read failed")
		return ""
	}
	c.log.Debug().Str("code", code).Str("section", string(s)).Dur("latency", lat).Int("bytes", len(body)).Msg("labels fetched")
	return strings.ToValidUTF8(string(body), "")
}

// FetchAll fetches the three sections concurrently
func (c *Client) FetchAll(ctx context.Context, code string) Sections {
	var (
		out Sections
		wg  sync.WaitGroup
	)
	wg.Go(func() { out.Effect = c.Fetch(ctx, code, Effect) })
	wg.Go(func() { out.Usage = c.Fetch(ctx, code, Usage) })
	wg.Go(func() { out.Precautions = c.Fetch(ctx, code, Precautions) })
	wg.Wait()
	return out
}
