package modkit

import "net/http"

// Option configures one module at build time
type Option func(*buildCfg)

type buildCfg struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	ports  any
}

// WithName labels the module in startup logs and panics
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix is the route prefix under /api/v1, for example /favorites
func WithPrefix(prefix string) Option { return func(c *buildCfg) { c.prefix = prefix } }

// WithMiddlewares appends handlers wrapped around this module's routes only
// repeated options accumulate, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts hands a module the ports it consumes from its siblings
// T is declared by the consuming module; a later call replaces an earlier one
func WithPorts[T any](p T) Option { return func(c *buildCfg) { c.ports = p } }
