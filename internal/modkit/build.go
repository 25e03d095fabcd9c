package modkit

import (
	"net/http"

	"pillbox/internal/modkit/httpkit"
	str "pillbox/internal/platform/strings"
)

// Built is the resolved option set a module constructor works from
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
	}
}

// Routes returns the mountable half of a module around register
func (b Built) Routes(register func(httpkit.Router)) Routes {
	return Routes{name: b.Name, prefix: b.Prefix, mw: b.Mw, register: register}
}

// Routes is embedded by modules for MountRoutes and Name
type Routes struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	register func(httpkit.Router)
}

// MountRoutes mounts register under the module prefix behind its middlewares
func (r Routes) MountRoutes(rt httpkit.Router) {
	httpkit.MountUnder(rt, str.MustPrefix(r.prefix), r.mw, func(sub httpkit.Router) {
		if r.register != nil {
			r.register(sub)
		}
	})
}

// Name returns the module name, panicking when it was never set
func (r Routes) Name() string { return str.MustString(r.name, "module name") }
