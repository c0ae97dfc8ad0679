// Package service contains catalog query workflows
package service

import (
	"context"

	"hubcat/internal/adapters/catalog/cutout"
	"hubcat/internal/adapters/catalog/hsc"
	"hubcat/internal/services/api/catalog/domain"
)

// Service defines the service contract for catalog queries
type Service interface{ domain.ServicePort }

// Svc implements the Service interface on top of the catalog clients
type Svc struct {
	catalog *hsc.Client
	cutouts *cutout.Client
}

// New creates a new catalog service
func New(catalog *hsc.Client, cutouts *cutout.Client) *Svc {
	if catalog == nil {
		panic("catalog.Service requires a non nil hsc client")
	}
	if cutouts == nil {
		panic("catalog.Service requires a non nil cutout client")
	}
	return &Svc{catalog: catalog, cutouts: cutouts}
}

// Cone runs a positional search and shapes the result per format
func (s *Svc) Cone(ctx context.Context, in domain.ConeInput) (*domain.SearchResult, error) {
	q := queryOf(in.Table, in.Release, in.MagType, in.Format, in.Columns, in.Filters)
	res, err := s.catalog.ConeSearch(ctx, in.RA, in.Dec, in.Radius, q)
	if err != nil {
		return nil, err
	}
	return shapeResult(res), nil
}

// Search runs a generic filter search
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (*domain.SearchResult, error) {
	q := queryOf(in.Table, in.Release, in.MagType, in.Format, in.Columns, in.Filters)
	res, err := s.catalog.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return shapeResult(res), nil
}

// Metadata fetches column metadata for a release/table pair
func (s *Svc) Metadata(ctx context.Context, release, table, magtype string) ([]domain.Column, error) {
	cols, err := s.catalog.Metadata(ctx, hsc.Table(table), hsc.Release(release), magOrDefault(table, magtype))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Column, 0, len(cols))
	for _, c := range cols {
		out = append(out, domain.Column{Name: c.Name, Type: c.Type, Description: c.Description})
	}
	return out, nil
}

// Tables lists the tables a release serves
func (s *Svc) Tables(_ context.Context, release string) (domain.TablesResult, error) {
	tabs, err := hsc.Tables(hsc.Release(release))
	if err != nil {
		return domain.TablesResult{}, err
	}
	names := make([]string, 0, len(tabs))
	for _, t := range tabs {
		names = append(names, string(t))
	}
	return domain.TablesResult{Release: release, Tables: names}, nil
}

// Cutouts builds preview URLs for a matched source position
func (s *Svc) Cutouts(_ context.Context, in domain.CutoutsInput) (domain.CutoutsResult, error) {
	urls, err := s.cutouts.URLs(cutout.Request{
		RA:     in.RA,
		Dec:    in.Dec,
		Size:   in.Size,
		Images: in.Images,
	})
	if err != nil {
		return domain.CutoutsResult{}, err
	}
	return domain.CutoutsResult{URLs: urls}, nil
}

// queryOf maps transport strings onto a helper query
func queryOf(table, release, magtype, format string, columns []string, filters map[string]string) hsc.Query {
	return hsc.Query{
		Table:   hsc.Table(table),
		Release: hsc.Release(release),
		MagType: hsc.MagType(magtype),
		Format:  hsc.Format(format),
		Columns: columns,
		Filters: filters,
	}
}

// magOrDefault keeps metadata paths stable when magtype is omitted
// for the summary table
func magOrDefault(table, magtype string) hsc.MagType {
	if table == string(hsc.TableSummary) && magtype == "" {
		return hsc.MagAper2
	}
	return hsc.MagType(magtype)
}

// shapeResult converts a helper result into the transport shape,
// setting a content type for raw passthrough bodies
func shapeResult(res *hsc.Result) *domain.SearchResult {
	out := &domain.SearchResult{Format: string(res.Format)}
	switch res.Format {
	case hsc.FormatCSV:
		out.ContentType = "text/csv; charset=utf-8"
		out.Body = res.Raw
	case hsc.FormatVOTable:
		out.ContentType = "application/xml; charset=utf-8"
		out.Body = res.Raw
	case hsc.FormatJSON:
		out.JSON = res.JSON
	case hsc.FormatTable:
		out.Table = res.Table
	}
	return out
}
