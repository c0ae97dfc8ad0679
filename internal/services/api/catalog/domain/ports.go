package domain

import "context"

// ServicePort defines the service contract for catalog queries
type ServicePort interface {
	Cone(ctx context.Context, in ConeInput) (*SearchResult, error)
	Search(ctx context.Context, in SearchInput) (*SearchResult, error)
	Metadata(ctx context.Context, release, table, magtype string) ([]Column, error)
	Tables(ctx context.Context, release string) (TablesResult, error)
	Cutouts(ctx context.Context, in CutoutsInput) (CutoutsResult, error)
}
