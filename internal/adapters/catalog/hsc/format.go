package hsc

import (
	perr "hubcat/internal/platform/errors"
)

// Format selects the response encoding for a search
type Format string

// Supported formats. FormatTable is derived: the request goes out as csv
// and the body is parsed into an in-memory table before return
const (
	FormatCSV     Format = "csv"
	FormatVOTable Format = "votable"
	FormatJSON    Format = "json"
	FormatTable   Format = "table"
)

// wire returns the format actually sent to the catalog
func (f Format) wire() (Format, error) {
	switch f {
	case FormatCSV, FormatVOTable, FormatJSON:
		return f, nil
	case FormatTable:
		return FormatCSV, nil
	default:
		return "", perr.UnsupportedFormatf("unsupported format %q", f)
	}
}
