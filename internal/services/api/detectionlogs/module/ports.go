package module

import dldom "pillbox/internal/services/api/detectionlogs/domain"

// Ports holds the ports exposed by the detection log module
type Ports struct {
	Recorder dldom.RecorderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
