// Package api provides the HTTP API for the application
package api

import (
	"pillbox/internal/adapters/identity"
	"pillbox/internal/platform/config"
	"pillbox/internal/platform/logger"
	phttp "pillbox/internal/platform/net/http"
	"pillbox/internal/platform/store"

	"pillbox/internal/modkit"
	"pillbox/internal/modkit/httpkit"
	"pillbox/internal/modkit/module"
	"pillbox/internal/modkit/swaggerkit"

	detmod "pillbox/internal/services/api/detection/module"
	dlmod "pillbox/internal/services/api/detectionlogs/module"
	favmod "pillbox/internal/services/api/favorites/module"
	medmod "pillbox/internal/services/api/medicines/module"
	memmod "pillbox/internal/services/api/members/module"
	metamod "pillbox/internal/services/api/meta/module"
	slmod "pillbox/internal/services/api/searchlogs/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Tokens         *identity.Manager
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		RDS: opt.Store.RDS,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// collection modules first; the rest consume their ports
	favorites := favmod.New(deps)
	detectionLogs := dlmod.New(deps)
	searchLogs := slmod.New(deps)

	favPorts := module.MustPortsOf[favmod.Ports](favorites)
	dlPorts := module.MustPortsOf[dlmod.Ports](detectionLogs)

	members := memmod.New(deps, modkit.WithPorts(memmod.Ports{
		Favorites:     favPorts.Lookup,
		DetectionLogs: dlPorts.Recorder,
	}))
	medicines := medmod.New(deps, modkit.WithPorts(medmod.Ports{
		Favorites:  favPorts.Lookup,
		SearchLogs: module.MustPortsOf[slmod.Ports](searchLogs).Appender,
	}))
	detection := detmod.New(deps, modkit.WithPorts(detmod.Ports{
		Catalog: module.MustPortsOf[medmod.Ports](medicines).Detail,
		History: dlPorts.Recorder,
	}))

	// bearer token -> live member
	authPort := httpkit.NewPortFunc(TokenFunc(opt.Tokens, module.MustPortsOf[memmod.Ports](members).Resolver))

	public := []module.Module{metamod.New(deps)}
	protected := []module.Module{favorites, detectionLogs, searchLogs, members, medicines, detection}

	// versioned API with a common middleware stack
	origins := opt.Config.Prefix("CORE_API_").MayCSV("CORS_ORIGINS", nil)
	httpkit.MountAPI(r, "v1", httpkit.CommonStack(origins...), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range public {
			m.MountRoutes(api)
		}
		httpkit.Protected(api, authPort, func(sec httpkit.Router) {
			for _, m := range protected {
				m.MountRoutes(sec)
			}
		})
	})
}
