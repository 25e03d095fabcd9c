package module

import sldom "pillbox/internal/services/api/searchlogs/domain"

// Ports holds the ports exposed by the search log module
type Ports struct {
	Appender sldom.AppendPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
