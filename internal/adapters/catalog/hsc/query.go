package hsc

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query describes one catalog search. Zero values fall back to the
// defaults: release v3, summary table, magaper2, csv
type Query struct {
	Table   Table
	Release Release
	MagType MagType
	Format  Format

	// Columns is an optional allow-list validated against table metadata
	Columns []string

	// Filters are passed through as query parameters. Range qualifiers
	// are expressed as key suffixes: magaper2.gte, numimages.lt, ...
	Filters map[string]string
}

// normalized returns a copy with defaults applied
func (q Query) normalized() Query {
	if q.Release == "" {
		q.Release = ReleaseV3
	}
	if q.Table == "" {
		q.Table = TableSummary
	}
	if q.Table == TableSummary && q.MagType == "" {
		q.MagType = MagAper2
	}
	if q.Format == "" {
		q.Format = FormatCSV
	}
	return q
}

// withPosition clones q and injects ra/dec/radius filters (degrees)
func (q Query) withPosition(ra, dec, radius float64) Query {
	f := make(map[string]string, len(q.Filters)+3)
	for k, v := range q.Filters {
		f[k] = v
	}
	f["ra"] = formatCoord(ra)
	f["dec"] = formatCoord(dec)
	f["radius"] = formatRadius(radius)
	q.Filters = f
	return q
}

// encodeParams builds the query string from filters plus the optional
// bracketed column allow-list
func (q Query) encodeParams() string {
	v := url.Values{}
	for k, val := range q.Filters {
		v.Set(k, val)
	}
	if len(q.Columns) > 0 {
		cols := make([]string, len(q.Columns))
		for i, c := range q.Columns {
			cols[i] = strings.TrimSpace(c)
		}
		v.Set("columns", "["+strings.Join(cols, ",")+"]")
	}
	return v.Encode()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatRadius rounds to 4 decimal places (~0.36 arcsec), well inside
// the catalog cross-match radius
func formatRadius(r float64) string {
	return strconv.FormatFloat(math.Round(r*1e4)/1e4, 'f', -1, 64)
}
