// Package module wires the indexer; it mounts no routes
package module

import (
	"pillbox/internal/modkit"
	"pillbox/internal/services/indexer/domain"
	"pillbox/internal/services/indexer/repo"
	"pillbox/internal/services/indexer/service"
)

// Ports defines the indexer module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the indexer module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the indexer from deps; both PG and CH are required
func New(deps modkit.Deps) *Module {
	if deps.PG == nil || deps.CH == nil {
		panic("indexer module requires postgres and clickhouse")
	}
	opts := FromConfig(deps.Cfg)
	svc := service.New(
		repo.NewCatalog(deps.PG),
		repo.NewSearch(deps.CH, opts.Table),
		service.Config{Workers: opts.Workers, PageSize: opts.PageSize, Attempts: opts.Attempts, RetryBase: opts.RetryBase},
	)
	return &Module{deps: deps, ports: Ports{Runner: svc}}
}

// Name returns the module name
func (m *Module) Name() string { return "indexer" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Runner returns the reindex entry point
func (m *Module) Runner() domain.RunnerPort { return m.ports.Runner }
