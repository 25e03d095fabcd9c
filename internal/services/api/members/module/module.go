// Package module wires members into the API using modkit
package module

import (
	modkit "pillbox/internal/modkit"
	memhttp "pillbox/internal/services/api/members/http"
	memrepo "pillbox/internal/services/api/members/repo"
	memsvc "pillbox/internal/services/api/members/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Routes
	ports Ports
}

// New constructs a members module; the count ports arrive via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("members"), modkit.WithPrefix("/members")}, opts...)...)

	injected, _ := b.Ports.(Ports)
	svc := memsvc.New(deps.PG, memrepo.NewPG(), memsvc.Counters{
		Favorites:     injected.Favorites,
		DetectionLogs: injected.DetectionLogs,
	})
	return &Module{
		Routes: b.Routes(func(r modkit.Router) { memhttp.Register(r, svc) }),
		ports:  Ports{Resolver: svc},
	}
}
