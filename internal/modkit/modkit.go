// Package modkit provides module wiring and core deps
package modkit

import (
	"pillbox/internal/modkit/httpkit"
	"pillbox/internal/modkit/module"
)

type (
	// Module is the common surface for API modules that mount routes and expose ports
	Module = module.Module

	// Router is the routing seam modules register on
	Router = httpkit.Router
)
