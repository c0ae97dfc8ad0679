// Package table parses delimited catalog payloads into an in-memory table
package table

import (
	"bytes"
	"encoding/csv"
	"strconv"

	perr "hubcat/internal/platform/errors"
)

// Table is a parsed result set: a header row plus typed cells.
// Cells hold float64 where the whole column parses as numeric,
// otherwise the original string
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns
func (t *Table) NumCols() int { return len(t.Columns) }

// Col returns the index of a column name, -1 when absent
func (t *Table) Col(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ParseCSV parses a comma separated payload with a header row.
// Ragged rows fail; an empty payload yields an empty table
func ParseCSV(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	recs, err := r.ReadAll()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "csv parse failed")
	}
	if len(recs) == 0 {
		return &Table{}, nil
	}

	t := &Table{Columns: recs[0]}
	raw := recs[1:]

	// decide per column whether every value parses as a number
	numeric := make([]bool, len(t.Columns))
	for i := range numeric {
		numeric[i] = len(raw) > 0
		for _, rec := range raw {
			if _, err := strconv.ParseFloat(rec[i], 64); err != nil {
				numeric[i] = false
				break
			}
		}
	}

	t.Rows = make([][]any, len(raw))
	for ri, rec := range raw {
		row := make([]any, len(rec))
		for ci, v := range rec {
			if numeric[ci] {
				f, _ := strconv.ParseFloat(v, 64)
				row[ci] = f
			} else {
				row[ci] = v
			}
		}
		t.Rows[ri] = row
	}
	return t, nil
}
