// Package http provides http transport for catalog queries
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"hubcat/internal/modkit/httpkit"
	"hubcat/internal/services/api/catalog/domain"
	svc "hubcat/internal/services/api/catalog/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ConeInput](r, "/cone", h.cone)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.CutoutsInput](r, "/cutouts", h.cutouts)
	httpkit.Get(r, "/metadata/{release}/{table}", h.metadata)
	httpkit.Get(r, "/tables/{release}", h.tables)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /catalog/cone Catalog catalogCone
// @Summary Cone search around a sky position
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.ConeInput true "Query"
// @Success 200 {object} domain.SearchResult "ok"
// @Router /catalog/cone [post]
func (h *handlers) cone(r *stdhttp.Request, in domain.ConeInput) (any, error) {
	res, err := h.svc.Cone(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return respond(res), nil
}

// swagger:route POST /catalog/search Catalog catalogSearch
// @Summary Filter search against a catalog table
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.SearchResult "ok"
// @Router /catalog/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	res, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return respond(res), nil
}

// swagger:route POST /catalog/cutouts Catalog catalogCutouts
// @Summary Cutout preview URLs for a position
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.CutoutsInput true "Position and images"
// @Success 200 {object} domain.CutoutsResult "ok"
// @Router /catalog/cutouts [post]
func (h *handlers) cutouts(r *stdhttp.Request, in domain.CutoutsInput) (any, error) {
	return h.svc.Cutouts(r.Context(), in)
}

// swagger:route GET /catalog/metadata/{release}/{table} Catalog catalogMetadata
// @Summary Column metadata for a release/table pair
// @Tags Catalog
// @Produce json
// @Param release path string true "Catalog release" Enums(v2, v3)
// @Param table path string true "Catalog table"
// @Param magtype query string false "Magnitude type for summary" Enums(magaper2, magauto)
// @Success 200 {array} domain.Column "ok"
// @Router /catalog/metadata/{release}/{table} [get]
func (h *handlers) metadata(r *stdhttp.Request) (any, error) {
	release := chi.URLParam(r, "release")
	table := chi.URLParam(r, "table")
	magtype := r.URL.Query().Get("magtype")
	return h.svc.Metadata(r.Context(), release, table, magtype)
}

// swagger:route GET /catalog/tables/{release} Catalog catalogTables
// @Summary Tables served by a catalog release
// @Tags Catalog
// @Produce json
// @Param release path string true "Catalog release" Enums(v2, v3)
// @Success 200 {object} domain.TablesResult "ok"
// @Router /catalog/tables/{release} [get]
func (h *handlers) tables(r *stdhttp.Request) (any, error) {
	return h.svc.Tables(r.Context(), chi.URLParam(r, "release"))
}

// respond shapes a search result for the wire. Raw formats go out
// verbatim with their content type, everything else through the envelope
func respond(res *domain.SearchResult) any {
	if res.Body != nil {
		return httpkit.Raw(res.ContentType, res.Body)
	}
	if res.Table != nil {
		return res.Table
	}
	return res.JSON
}
