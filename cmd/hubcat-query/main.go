// Command hubcat-query runs one cone search against the Hubble Source
// Catalog and prints the result
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"hubcat/internal/adapters/catalog/hsc"
	ctable "hubcat/internal/core/table"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	var (
		ra      = flag.Float64("ra", 0, "right ascension in degrees")
		dec     = flag.Float64("dec", 0, "declination in degrees")
		radius  = flag.Float64("radius", 0, "search radius in degrees")
		table   = flag.String("table", "summary", "catalog table")
		release = flag.String("release", "v3", "catalog release (v2, v3)")
		magtype = flag.String("magtype", "magaper2", "magnitude type for summary (magaper2, magauto)")
		format  = flag.String("format", "table", "output format (csv, votable, json, table)")
		columns = flag.String("columns", "", "comma separated column allow-list")
		filters = flag.String("filters", "", "comma separated key=value filters (key suffixes .gte .lte .gt .lt)")
		base    = flag.String("base", "", "catalog base URL override")
		timeout = flag.Duration("timeout", 30*time.Second, "request timeout")
		limit   = flag.Int("limit", 25, "max rows to print in table output, 0 for all")
	)
	flag.Parse()

	if *radius <= 0 {
		_, _ = fmt.Fprintln(os.Stderr, "usage: hubcat-query -ra 187.706 -dec 12.391 -radius 0.02 [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	q := hsc.Query{
		Table:   hsc.Table(*table),
		Release: hsc.Release(*release),
		MagType: hsc.MagType(*magtype),
		Format:  hsc.Format(*format),
	}
	if *columns != "" {
		q.Columns = strings.Split(*columns, ",")
	}
	q.Filters = parseFilters(*filters)

	client := hsc.NewClient(hsc.Options{BaseURL: *base, Timeout: *timeout})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.ConeSearch(ctx, *ra, *dec, *radius, q)
	must(err)

	switch res.Format {
	case hsc.FormatTable:
		printTable(res.Table, *limit)
	case hsc.FormatJSON:
		printJSON(res.JSON)
	default:
		// csv and votable bodies go out verbatim
		_, _ = os.Stdout.Write(res.Raw)
	}
}

// parseFilters turns "k=v,k2=v2" into the filter map
func parseFilters(s string) map[string]string {
	out := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			must(fmt.Errorf("bad filter %q, want key=value", pair))
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// printTable writes an aligned column view of the parsed table
func printTable(t *ctable.Table, limit int) {
	if t == nil || t.NumRows() == 0 {
		_, _ = fmt.Fprintln(os.Stderr, "no rows")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(t.Columns, "\t"))

	n := t.NumRows()
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		cells := make([]string, len(t.Rows[i]))
		for j, v := range t.Rows[i] {
			cells[j] = fmt.Sprint(v)
		}
		_, _ = fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	must(w.Flush())

	if n < t.NumRows() {
		_, _ = fmt.Fprintf(os.Stderr, "... %d of %d rows shown\n", n, t.NumRows())
	}
}

// printJSON re-encodes the decoded payload indented
func printJSON(v any) {
	enc, err := json.MarshalIndent(v, "", "  ")
	must(err)
	_, _ = os.Stdout.Write(enc)
	_, _ = os.Stdout.WriteString("\n")
}
