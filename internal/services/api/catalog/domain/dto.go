// Package domain holds DTOs for catalog http and service contracts
package domain

import (
	ctable "hubcat/internal/core/table"
)

// ConeInput is the input for a positional cone search
type ConeInput struct {
	RA     float64 `json:"ra"     validate:"gte=0,lt=360"          example:"187.70617"`
	Dec    float64 `json:"dec"    validate:"gte=-90,lte=90"        example:"12.39106"`
	Radius float64 `json:"radius" validate:"required,gt=0"         example:"0.1389"`

	Table   string `json:"table,omitempty"   validate:"omitempty,oneof=summary detailed propermotions sourcepositions hcvsummary hcv" example:"summary"`
	Release string `json:"release,omitempty" validate:"omitempty,oneof=v2 v3"                                                         example:"v3"`
	MagType string `json:"magtype,omitempty" validate:"omitempty,oneof=magaper2 magauto"                                              example:"magaper2"`
	Format  string `json:"format,omitempty"  validate:"omitempty,oneof=csv votable json table"                                        example:"json"`

	Columns []string          `json:"columns,omitempty" example:"MatchID,MatchRA,MatchDec"`
	Filters map[string]string `json:"filters,omitempty"`
}

// SearchInput is the input for a generic filter search.
// At least one filter is required; the helper enforces that
type SearchInput struct {
	Table   string `json:"table,omitempty"   validate:"omitempty,oneof=summary detailed propermotions sourcepositions hcvsummary hcv" example:"detailed"`
	Release string `json:"release,omitempty" validate:"omitempty,oneof=v2 v3"                                                         example:"v3"`
	MagType string `json:"magtype,omitempty" validate:"omitempty,oneof=magaper2 magauto"                                              example:"magaper2"`
	Format  string `json:"format,omitempty"  validate:"omitempty,oneof=csv votable json table"                                        example:"csv"`

	Columns []string          `json:"columns,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
}

// CutoutsInput asks for image cutout preview URLs around a position
type CutoutsInput struct {
	RA     float64  `json:"ra"             validate:"gte=0,lt=360"            example:"210.80227"`
	Dec    float64  `json:"dec"            validate:"gte=-90,lte=90"          example:"54.34895"`
	Size   int      `json:"size,omitempty" validate:"omitempty,min=1,max=2048" example:"120"`
	Images []string `json:"images"         validate:"dive,min=1"`
}

// Column is one column metadata entry
type Column struct {
	Name        string `json:"name"        example:"MatchRA"`
	Type        string `json:"type"        example:"float"`
	Description string `json:"description" example:"Right ascension of the match"`
}

// SearchResult is a format-shaped search outcome. Raw formats carry
// Body and ContentType; json carries JSON; table carries Table
type SearchResult struct {
	Format      string
	ContentType string
	Body        []byte
	JSON        any
	Table       *ctable.Table
}

// TablesResult lists the tables a release serves
type TablesResult struct {
	Release string   `json:"release" example:"v3"`
	Tables  []string `json:"tables"  example:"summary,detailed"`
}

// CutoutsResult carries one preview URL per requested image
type CutoutsResult struct {
	URLs []string `json:"urls"`
}
