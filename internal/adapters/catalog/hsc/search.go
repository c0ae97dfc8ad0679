package hsc

import (
	"context"
	"encoding/json"
	"strings"

	ctable "hubcat/internal/core/table"
	perr "hubcat/internal/platform/errors"
)

// Column is one entry of a table's metadata
type Column struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Result is the decoded outcome of a search. Exactly one payload field
// is set, matching Format
type Result struct {
	Format Format

	// Raw holds csv and votable bodies verbatim
	Raw []byte `json:"raw,omitempty"`

	// JSON holds the decoded json payload
	JSON any `json:"json,omitempty"`

	// Table holds the parsed in-memory table
	Table *ctable.Table `json:"table,omitempty"`
}

// ConeSearch runs a positional search: ra/dec in degrees, radius in
// degrees. Everything else comes from q
func (c *Client) ConeSearch(ctx context.Context, ra, dec, radius float64, q Query) (*Result, error) {
	return c.Search(ctx, q.withPosition(ra, dec, radius))
}

// Search builds the query URL, validates columns and filters, issues one
// GET, and decodes the body per the requested format.
// All validation happens before the search request goes out
func (c *Client) Search(ctx context.Context, q Query) (*Result, error) {
	q = q.normalized()

	wireFmt, err := q.Format.wire()
	if err != nil {
		return nil, err
	}
	base, err := ResolveBaseURL(c.opts.BaseURL, q.Table, q.Release, q.MagType)
	if err != nil {
		return nil, err
	}
	if len(q.Filters) == 0 {
		return nil, perr.MissingParametersf("at least one filter is required")
	}
	if len(q.Columns) > 0 {
		cols, err := c.Metadata(ctx, q.Table, q.Release, q.MagType)
		if err != nil {
			return nil, err
		}
		if err := validateColumns(q.Columns, cols); err != nil {
			return nil, err
		}
	}

	body, err := c.get(ctx, base+"."+string(wireFmt)+"?"+q.encodeParams())
	if err != nil {
		return nil, err
	}

	res := &Result{Format: q.Format}
	switch q.Format {
	case FormatJSON:
		if err := json.Unmarshal(body, &res.JSON); err != nil {
			return nil, perr.JSONErrf("catalog json decode failed: %v", err)
		}
	case FormatTable:
		t, err := ctable.ParseCSV(body)
		if err != nil {
			return nil, err
		}
		res.Table = t
	default: // csv, votable stay raw for the caller to parse
		res.Raw = body
	}
	return res, nil
}

// Metadata fetches the column metadata for a table
func (c *Client) Metadata(ctx context.Context, table Table, release Release, mag MagType) ([]Column, error) {
	q := Query{Table: table, Release: release, MagType: mag}.normalized()
	base, err := ResolveBaseURL(c.opts.BaseURL, q.Table, q.Release, q.MagType)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, base+"/metadata")
	if err != nil {
		return nil, err
	}
	var cols []Column
	if err := json.Unmarshal(body, &cols); err != nil {
		return nil, perr.JSONErrf("metadata decode failed: %v", err)
	}
	return cols, nil
}

// validateColumns checks every requested name against metadata,
// case-insensitively and whitespace-trimmed, and reports all bad names
// together
func validateColumns(requested []string, cols []Column) error {
	known := make(map[string]bool, len(cols))
	for _, c := range cols {
		known[strings.ToLower(c.Name)] = true
	}
	var bad []string
	for _, r := range requested {
		name := strings.ToLower(strings.TrimSpace(r))
		if name == "" || !known[name] {
			bad = append(bad, strings.TrimSpace(r))
		}
	}
	if len(bad) > 0 {
		return perr.WithField(
			perr.UnknownColumnf("unknown columns: %s", strings.Join(bad, ", ")),
			strings.Join(bad, ","),
		)
	}
	return nil
}
