// Package module wires favorites into the API using modkit
package module

import (
	modkit "pillbox/internal/modkit"
	favhttp "pillbox/internal/services/api/favorites/http"
	favsvc "pillbox/internal/services/api/favorites/service"
	"pillbox/internal/services/api/owned"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Routes
	ports Ports
}

// New constructs a favorites module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("favorites"), modkit.WithPrefix("/favorites")}, opts...)...)

	svc := favsvc.New(deps.PG, owned.NewPG(favsvc.Table))
	return &Module{
		Routes: b.Routes(func(r modkit.Router) { favhttp.Register(r, svc) }),
		ports:  Ports{Lookup: svc},
	}
}
