package module

import favdom "pillbox/internal/services/api/favorites/domain"

// Ports holds the ports exposed by the favorites module
type Ports struct {
	Lookup favdom.LookupPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
