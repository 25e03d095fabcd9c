package module

import detdom "pillbox/internal/services/api/detection/domain"

// Ports holds the ports detection consumes; both are required
type Ports struct {
	Catalog detdom.CatalogPort
	History detdom.HistoryPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
