package module

import (
	"context"

	"pillbox/internal/adapters/labels"
	meddom "pillbox/internal/services/api/medicines/domain"
)

// Ports declares the injected ports this module needs and the ones it exposes
type Ports struct {
	// injected
	Favorites  meddom.FavoritePort
	SearchLogs meddom.SearchLogPort

	// exposed
	Detail meddom.DetailPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// labelSource adapts the labels client to the domain port
type labelSource struct{ c *labels.Client }

func (l labelSource) Labels(ctx context.Context, code string) meddom.Labels {
	s := l.c.FetchAll(ctx, code)
	return meddom.Labels{Effect: s.Effect, Usages: s.Usage, Precautions: s.Precautions}
}
