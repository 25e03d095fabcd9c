package module

import memdom "pillbox/internal/services/api/members/domain"

// Ports holds what members consumes and exposes
// Favorites and DetectionLogs are injected, Resolver is exposed to the auth middleware
type Ports struct {
	Favorites     memdom.CountPort
	DetectionLogs memdom.CountPort

	Resolver memdom.ResolverPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
