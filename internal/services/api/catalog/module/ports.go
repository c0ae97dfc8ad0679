package module

import (
	"context"

	catalogdom "hubcat/internal/services/api/catalog/domain"
	catalogsvc "hubcat/internal/services/api/catalog/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCatalogPort adapts the catalog service to the domain port interface
type adaptCatalogPort struct{ svc catalogsvc.Service }

// Cone implements the domain ServicePort interface
func (a adaptCatalogPort) Cone(ctx context.Context, in catalogdom.ConeInput) (*catalogdom.SearchResult, error) {
	return a.svc.Cone(ctx, in)
}

// Search implements the domain ServicePort interface
func (a adaptCatalogPort) Search(ctx context.Context, in catalogdom.SearchInput) (*catalogdom.SearchResult, error) {
	return a.svc.Search(ctx, in)
}

// Metadata implements the domain ServicePort interface
func (a adaptCatalogPort) Metadata(
	ctx context.Context,
	release, table, magtype string,
) ([]catalogdom.Column, error) {
	return a.svc.Metadata(ctx, release, table, magtype)
}

// Tables implements the domain ServicePort interface
func (a adaptCatalogPort) Tables(ctx context.Context, release string) (catalogdom.TablesResult, error) {
	return a.svc.Tables(ctx, release)
}

// Cutouts implements the domain ServicePort interface
func (a adaptCatalogPort) Cutouts(ctx context.Context, in catalogdom.CutoutsInput) (catalogdom.CutoutsResult, error) {
	return a.svc.Cutouts(ctx, in)
}
