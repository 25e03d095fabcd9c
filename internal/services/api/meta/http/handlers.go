// Package http serves the liveness, readiness and version probes
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pillbox/internal/core/version"
	"pillbox/internal/modkit/httpkit"
	"pillbox/internal/platform/store"
)

// Probe status values
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusFail     = "fail"
	StatusSkipped  = "skipped"
)

// Dep is a backend /ready pings; a nil Target is a disabled backend
type Dep struct {
	Name   string
	Target any
}

// Deps configures the probes
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      []Dep

	// ReadyTimeout bounds one /ready call, 2s when unset
	ReadyTimeout time.Duration
}

// Register mounts /health, /ready and /version on r
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	p := &probes{Deps: d, now: time.Now}
	httpkit.Get(r, "/health", p.health)
	httpkit.Get(r, "/ready", p.ready)
	httpkit.Get(r, "/version", p.version)
}

type probes struct {
	Deps
	now func() time.Time
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Service string `json:"service" example:"pillbox-api"`
	Started string `json:"started" example:"2026-10-01T09:00:00Z"`
	Uptime  int64  `json:"uptime_seconds" example:"300"`
}

// ReadyCheck is one backend result; Status is ok, fail or skipped
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse is ok when every backend answered, degraded when some were
// skipped and fail when any ping failed
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
}

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (p *probes) health(*http.Request) (any, error) {
	return HealthResponse{
		Service: p.ServiceName,
		Started: p.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(p.now().Sub(p.StartedAt) / time.Second),
	}, nil
}

// @Summary Readiness of postgres, clickhouse and redis
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /meta/ready [get]
func (p *probes) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), p.ReadyTimeout)
	defer cancel()

	out := ReadyResponse{Status: StatusOK, Checks: make([]ReadyCheck, len(p.Checks))}
	var wg sync.WaitGroup
	for i, d := range p.Checks {
		wg.Go(func() { out.Checks[i] = check(ctx, d) })
	}
	wg.Wait()

	for _, c := range out.Checks {
		if c.Status == StatusFail {
			out.Status = StatusFail
			break
		}
		if c.Status != StatusOK {
			out.Status = StatusDegraded
		}
	}
	if out.Status == StatusFail {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

func check(ctx context.Context, d Dep) ReadyCheck {
	c := ReadyCheck{Name: d.Name, Status: StatusSkipped}
	p, ok := d.Target.(store.Pinger)
	if !ok {
		return c
	}
	if err := p.Ping(ctx); err != nil {
		c.Status, c.Error = StatusFail, err.Error()
		return c
	}
	c.Status = StatusOK
	return c
}

// @Summary Build stamp
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (p *probes) version(*http.Request) (any, error) {
	return version.Info(p.ServiceName), nil
}
