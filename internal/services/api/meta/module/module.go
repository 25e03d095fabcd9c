// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "pillbox/internal/modkit"
	metahttp "pillbox/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/health and /meta/version
const ServiceName = "pillbox-api"

// Module implements the modkit.Module interface
type Module struct {
	modkit.Routes
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)

	d := metahttp.Deps{ServiceName: ServiceName, StartedAt: time.Now(), Checks: checks(deps)}
	return &Module{Routes: b.Routes(func(r modkit.Router) { metahttp.Register(r, d) })}
}

// checks lists the stores /ready pings; a disabled store stays nil so it reports as skipped
func checks(deps modkit.Deps) []metahttp.Dep {
	out := []metahttp.Dep{{Name: "pg"}, {Name: "ch"}, {Name: "redis"}}
	if deps.PG != nil {
		out[0].Target = deps.PG
	}
	if deps.CH != nil {
		out[1].Target = deps.CH
	}
	if deps.RDS != nil {
		out[2].Target = deps.RDS
	}
	return out
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
