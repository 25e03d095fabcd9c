// Package module wires detection logs into the API using modkit
package module

import (
	modkit "pillbox/internal/modkit"
	dlhttp "pillbox/internal/services/api/detectionlogs/http"
	dlsvc "pillbox/internal/services/api/detectionlogs/service"
	"pillbox/internal/services/api/owned"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Routes
	ports Ports
}

// New constructs a detection log module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("detection_logs"), modkit.WithPrefix("/detection-logs")}, opts...)...)

	svc := dlsvc.New(deps.PG, owned.NewPG(dlsvc.Table))
	return &Module{
		Routes: b.Routes(func(r modkit.Router) { dlhttp.Register(r, svc) }),
		ports:  Ports{Recorder: svc},
	}
}
