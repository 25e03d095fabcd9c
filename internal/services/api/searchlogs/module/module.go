// Package module wires recent search logs into the API using modkit
package module

import (
	modkit "pillbox/internal/modkit"
	slhttp "pillbox/internal/services/api/searchlogs/http"
	slrepo "pillbox/internal/services/api/searchlogs/repo"
	slsvc "pillbox/internal/services/api/searchlogs/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Routes
	ports Ports
}

// New constructs a search log module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("searchlogs"), modkit.WithPrefix("/search-logs")}, opts...)...)

	svc := slsvc.New(slrepo.NewRedis(deps.RDS))
	return &Module{
		Routes: b.Routes(func(r modkit.Router) { slhttp.Register(r, svc) }),
		ports:  Ports{Appender: svc},
	}
}
