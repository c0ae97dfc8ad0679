// Package module wires meta endpoints into the API using a tiny module
package module

import (
	stdctx "context"
	"net/http"
	"time"

	"hubcat/internal/adapters/catalog/hsc"
	modkit "hubcat/internal/modkit"
	"hubcat/internal/modkit/httpkit"
	str "hubcat/internal/platform/strings"

	metahttp "hubcat/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	var pinger metahttp.Pinger
	if deps.Catalog != nil {
		pinger = catalogPinger{c: deps.Catalog}
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "hubcat-api",
			StartedAt:   m.startedAt,
			Catalog:     pinger,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

// catalogPinger probes upstream readiness with a cheap metadata fetch
type catalogPinger struct{ c *hsc.Client }

func (p catalogPinger) Ping(ctx stdctx.Context) error {
	_, err := p.c.Metadata(ctx, hsc.TableSummary, hsc.ReleaseV3, hsc.MagAper2)
	return err
}
