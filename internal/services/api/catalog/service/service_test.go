package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hubcat/internal/adapters/catalog/cutout"
	"hubcat/internal/adapters/catalog/hsc"
	perr "hubcat/internal/platform/errors"
	"hubcat/internal/services/api/catalog/domain"
)

// newService wires a service against a fake catalog server
func newService(t *testing.T, handler http.HandlerFunc) (*Svc, *[]*http.Request) {
	t.Helper()
	var seen []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Clone(r.Context()))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	cat := hsc.NewClient(hsc.Options{BaseURL: srv.URL})
	cut := cutout.New(cutout.Options{})
	return New(cat, cut), &seen
}

func TestNew_PanicsOnNilClients(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(nil, nil)
}

func TestCone_ShapesCSV(t *testing.T) {
	s, seen := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("MatchID,MatchRA\n1,187.706\n"))
	})

	res, err := s.Cone(context.Background(), domain.ConeInput{RA: 187.706, Dec: 12.391, Radius: 0.02})
	if err != nil {
		t.Fatalf("cone: %v", err)
	}
	if res.Format != "csv" {
		t.Fatalf("format = %q", res.Format)
	}
	if !strings.HasPrefix(res.ContentType, "text/csv") {
		t.Fatalf("content type = %q", res.ContentType)
	}
	if len(res.Body) == 0 || res.JSON != nil || res.Table != nil {
		t.Fatalf("result = %+v", res)
	}
	if (*seen)[0].URL.Path != "/v3/summary/magaper2.csv" {
		t.Fatalf("path = %q", (*seen)[0].URL.Path)
	}
}

func TestCone_ShapesTable(t *testing.T) {
	s, _ := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("MatchID,MatchRA\n1,187.706\n2,187.710\n"))
	})

	res, err := s.Cone(context.Background(), domain.ConeInput{
		RA: 187.706, Dec: 12.391, Radius: 0.02, Format: "table",
	})
	if err != nil {
		t.Fatalf("cone: %v", err)
	}
	if res.Table == nil || res.Table.NumRows() != 2 {
		t.Fatalf("table = %+v", res.Table)
	}
	if res.Body != nil || res.ContentType != "" {
		t.Fatalf("raw leaked into table result: %+v", res)
	}
}

func TestSearch_ShapesJSON(t *testing.T) {
	s, seen := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"MatchID":1}]}`))
	})

	res, err := s.Search(context.Background(), domain.SearchInput{
		Table:   "detailed",
		Format:  "json",
		Filters: map[string]string{"numimages.gte": "10"},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.JSON == nil {
		t.Fatal("json payload missing")
	}
	req := (*seen)[0]
	if req.URL.Path != "/v3/detailed.json" {
		t.Fatalf("path = %q", req.URL.Path)
	}
	if req.URL.Query().Get("numimages.gte") != "10" {
		t.Fatalf("params = %v", req.URL.Query())
	}
}

func TestSearch_MissingFiltersSurfaces(t *testing.T) {
	s, seen := newService(t, func(http.ResponseWriter, *http.Request) {})

	_, err := s.Search(context.Background(), domain.SearchInput{})
	if !perr.IsCode(err, perr.ErrorCodeMissingParameters) {
		t.Fatalf("err = %v", err)
	}
	if len(*seen) != 0 {
		t.Fatalf("unexpected requests: %d", len(*seen))
	}
}

func TestMetadata_DefaultsSummaryMagType(t *testing.T) {
	s, seen := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"MatchID","type":"long","description":"id"}]`))
	})

	cols, err := s.Metadata(context.Background(), "v3", "summary", "")
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if len(cols) != 1 || cols[0].Name != "MatchID" {
		t.Fatalf("cols = %+v", cols)
	}
	if (*seen)[0].URL.Path != "/v3/summary/magaper2/metadata" {
		t.Fatalf("path = %q", (*seen)[0].URL.Path)
	}
}

func TestMetadata_NonSummaryIgnoresMagType(t *testing.T) {
	s, seen := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := s.Metadata(context.Background(), "v3", "hcv", "magauto"); err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if (*seen)[0].URL.Path != "/v3/hcv/metadata" {
		t.Fatalf("path = %q", (*seen)[0].URL.Path)
	}
}

func TestTables_Listing(t *testing.T) {
	s, _ := newService(t, func(http.ResponseWriter, *http.Request) {})

	res, err := s.Tables(context.Background(), "v2")
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	if res.Release != "v2" || len(res.Tables) != 2 {
		t.Fatalf("res = %+v", res)
	}

	if _, err := s.Tables(context.Background(), "v9"); !perr.IsCode(err, perr.ErrorCodeInvalidCombination) {
		t.Fatalf("err = %v", err)
	}
}

func TestCutouts_URLs(t *testing.T) {
	s, _ := newService(t, func(http.ResponseWriter, *http.Request) {})

	res, err := s.Cutouts(context.Background(), domain.CutoutsInput{
		RA:     210.802,
		Dec:    54.348,
		Images: []string{"hst_9999_01_acs_wfc_f606w"},
	})
	if err != nil {
		t.Fatalf("cutouts: %v", err)
	}
	if len(res.URLs) != 1 || !strings.Contains(res.URLs[0], "red=hst_9999_01_acs_wfc_f606w") {
		t.Fatalf("urls = %v", res.URLs)
	}

	_, err = s.Cutouts(context.Background(), domain.CutoutsInput{RA: 1, Dec: 2})
	if !perr.IsCode(err, perr.ErrorCodeMissingParameters) {
		t.Fatalf("err = %v", err)
	}
}
