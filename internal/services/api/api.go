// Package api provides the HTTP API for the application
package api

import (
	"hubcat/internal/platform/config"
	"hubcat/internal/platform/logger"
	phttp "hubcat/internal/platform/net/http"

	"hubcat/internal/adapters/catalog/cutout"
	"hubcat/internal/adapters/catalog/hsc"

	"hubcat/internal/modkit"
	"hubcat/internal/modkit/httpkit"
	"hubcat/internal/modkit/module"
	"hubcat/internal/modkit/swaggerkit"

	catalogmod "hubcat/internal/services/api/catalog/module"
	metamod "hubcat/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Catalog        *hsc.Client
	Cutouts        *cutout.Client
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Catalog: opt.Catalog,
		Cutouts: opt.Cutouts,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		catalogmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
