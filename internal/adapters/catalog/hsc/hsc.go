// Package hsc is a client for the Hubble Source Catalog REST API.
//
// It builds validated query URLs for the catalog tables, runs cone and
// filter searches, and fetches column metadata. All validation happens
// before any network call; every failure surfaces as a typed project error
package hsc

import (
	perr "hubcat/internal/platform/errors"
)

// DefaultBaseURL is the production catalog endpoint
const DefaultBaseURL = "https://catalogs.mast.stsci.edu/api/v0.1/hsc"

// Release selects a catalog release
type Release string

// Known releases
const (
	ReleaseV2 Release = "v2"
	ReleaseV3 Release = "v3"
)

// Table selects a catalog table within a release
type Table string

// Known tables. Availability depends on release
const (
	TableSummary         Table = "summary"
	TableDetailed        Table = "detailed"
	TablePropermotions   Table = "propermotions"
	TableSourcePositions Table = "sourcepositions"
	TableHCVSummary      Table = "hcvsummary"
	TableHCV             Table = "hcv"
)

// MagType selects the magnitude aggregation for the summary table
type MagType string

// Magnitude types, summary table only
const (
	MagAper2 MagType = "magaper2"
	MagAuto  MagType = "magauto"
)

// releaseTables is the legality set: which tables each release serves
var releaseTables = map[Release]map[Table]bool{
	ReleaseV2: {
		TableSummary:  true,
		TableDetailed: true,
	},
	ReleaseV3: {
		TableSummary:         true,
		TableDetailed:        true,
		TablePropermotions:   true,
		TableSourcePositions: true,
		TableHCVSummary:      true,
		TableHCV:             true,
	},
}

var magTypes = map[MagType]bool{
	MagAper2: true,
	MagAuto:  true,
}

// Tables returns the tables a release serves, or an InvalidCombination
// error for an unknown release
func Tables(release Release) ([]Table, error) {
	set, ok := releaseTables[release]
	if !ok {
		return nil, perr.InvalidCombinationf("unknown release %q", release)
	}
	out := make([]Table, 0, len(set))
	for _, t := range []Table{
		TableSummary, TableDetailed, TablePropermotions,
		TableSourcePositions, TableHCVSummary, TableHCV,
	} {
		if set[t] {
			out = append(out, t)
		}
	}
	return out, nil
}

// ResolveBaseURL builds the base path for a table/release/magtype triple:
// {base}/{release}/{table}, or {base}/{release}/summary/{magtype} for the
// summary table whose payload depends on magnitude type. Fails with
// InvalidCombination when the triple is outside the legality set
func ResolveBaseURL(base string, table Table, release Release, mag MagType) (string, error) {
	if base == "" {
		base = DefaultBaseURL
	}
	set, ok := releaseTables[release]
	if !ok {
		return "", perr.InvalidCombinationf("unknown release %q", release)
	}
	if !set[table] {
		return "", perr.InvalidCombinationf("table %q is not available in release %q", table, release)
	}
	if table == TableSummary {
		if !magTypes[mag] {
			return "", perr.InvalidCombinationf("unknown magtype %q for summary table", mag)
		}
		return base + "/" + string(release) + "/" + string(table) + "/" + string(mag), nil
	}
	// magtype is meaningful only for summary; other tables ignore it
	return base + "/" + string(release) + "/" + string(table), nil
}
