// Package module wires detection into the API using modkit
package module

import (
	"pillbox/internal/adapters/detector"
	modkit "pillbox/internal/modkit"
	"pillbox/internal/platform/logger"
	"pillbox/internal/platform/net/middleware"
	dethttp "pillbox/internal/services/api/detection/http"
	detsvc "pillbox/internal/services/api/detection/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Routes
	ports Ports
}

// New constructs a detection module; catalog and history ports arrive via modkit.WithPorts
// only multipart bodies are accepted and uploads past CORE_DETECT_MAX_IN_FLIGHT get 429
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	cfg := detector.FromConfig(deps.Cfg)
	defaults := []modkit.Option{
		modkit.WithName("detection"),
		modkit.WithPrefix("/detection"),
		modkit.WithMiddlewares(middleware.AllowContentType("multipart/form-data")),
	}
	if cfg.MaxInFlight > 0 {
		defaults = append(defaults, modkit.WithMiddlewares(middleware.Throttle(cfg.MaxInFlight)))
	}
	b := modkit.Build(append(defaults, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok || in.Catalog == nil || in.History == nil {
		panic("detection module requires catalog and history ports")
	}

	logger.Named("detection").Info().
		Str("mode", cfg.Mode).
		Int("min_score", cfg.MinScore).
		Int("max_in_flight", cfg.MaxInFlight).
		Msg("detector configured")

	svc := detsvc.New(detector.New(cfg), in.Catalog, in.History, cfg.MinScore)
	return &Module{
		Routes: b.Routes(func(r modkit.Router) { dethttp.Register(r, svc, cfg.MaxUpload) }),
		ports:  in,
	}
}
