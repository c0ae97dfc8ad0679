package cutout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	perr "hubcat/internal/platform/errors"
)

func TestURLs_Shape(t *testing.T) {
	c := New(Options{})

	urls, err := c.URLs(Request{
		RA:     187.706,
		Dec:    12.391,
		Size:   64,
		Images: []string{"hst_10012_01_acs_wfc_f606w", "hst_10012_01_acs_wfc_f814w"},
	})
	if err != nil {
		t.Fatalf("urls: %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("expected one url per image, got %d", len(urls))
	}

	u, err := url.Parse(urls[0])
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasSuffix(u.Path, "/fitscut.cgi") {
		t.Fatalf("path = %q", u.Path)
	}
	q := u.Query()
	if q.Get("red") != "hst_10012_01_acs_wfc_f606w" ||
		q.Get("ra") != "187.706" ||
		q.Get("dec") != "12.391" ||
		q.Get("size") != "64" ||
		q.Get("format") != "jpeg" {
		t.Fatalf("params = %v", q)
	}
}

func TestURLs_DefaultSizeAndNoImages(t *testing.T) {
	c := New(Options{})

	urls, err := c.URLs(Request{RA: 1, Dec: 2, Images: []string{"img"}})
	if err != nil {
		t.Fatalf("urls: %v", err)
	}
	u, _ := url.Parse(urls[0])
	if u.Query().Get("size") != "120" {
		t.Fatalf("default size = %q", u.Query().Get("size"))
	}

	if _, err := c.URLs(Request{RA: 1, Dec: 2}); !perr.IsCode(err, perr.ErrorCodeMissingParameters) {
		t.Fatalf("expected MissingParameters, got %v", err)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("red") == "gone" {
			http.Error(w, "nope", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("jpegbytes"))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})

	body, err := c.Fetch(context.Background(), srv.URL+"?red=img")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != "jpegbytes" {
		t.Fatalf("body = %q", body)
	}

	_, err = c.Fetch(context.Background(), srv.URL+"?red=gone")
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("expected Upstream, got %v", err)
	}
	if perr.UpstreamStatus(err) != http.StatusNotFound {
		t.Fatalf("status = %d", perr.UpstreamStatus(err))
	}
}
