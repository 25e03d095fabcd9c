// Package module wires medicines into the API using modkit
package module

import (
	"pillbox/internal/adapters/labels"
	modkit "pillbox/internal/modkit"
	medhttp "pillbox/internal/services/api/medicines/http"
	medrepo "pillbox/internal/services/api/medicines/repo"
	medsvc "pillbox/internal/services/api/medicines/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Routes
	ports Ports
}

// New constructs a medicines module; favorites and search log ports arrive via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("medicines"), modkit.WithPrefix("/medicines")}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	injected, _ := b.Ports.(Ports)

	lc := labels.NewClient(labels.Options{
		BaseURL:  cfg.LabelsBaseURL,
		Timeout:  cfg.LabelsTimeout,
		Disabled: !cfg.LabelsEnabled,
	})
	svc := medsvc.New(deps.PG, medrepo.NewHybrid(deps.CH, cfg.SearchTable), medsvc.Options{
		Favorites:  injected.Favorites,
		SearchLogs: injected.SearchLogs,
		Labels:     labelSource{c: lc},
	})
	return &Module{
		Routes: b.Routes(func(r modkit.Router) { medhttp.Register(r, svc) }),
		ports:  Ports{Detail: svc},
	}
}
