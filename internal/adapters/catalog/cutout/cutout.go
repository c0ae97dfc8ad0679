// Package cutout builds and fetches HLA fitscut image cutouts for a
// matched catalog source
package cutout

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	perr "hubcat/internal/platform/errors"
	"hubcat/internal/platform/logger"
)

// DefaultBaseURL is the Hubble Legacy Archive cutout service
const DefaultBaseURL = "https://hla.stsci.edu/cgi-bin/fitscut.cgi"

const (
	defaultTimeout = 30 * time.Second
	defaultUA      = "hubcat"
	defaultSize    = 120 // pixels

	maxBody = 16 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client builds cutout URLs and can fetch single cutout bodies
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("cutout"),
	}
}

// Request describes cutouts for one sky position
type Request struct {
	RA  float64
	Dec float64

	// Size is the cutout edge in pixels, defaults to 120
	Size int

	// Images are the exposure names to cut from, one URL per image
	Images []string
}

// URLs returns one fitscut URL per requested image
func (c *Client) URLs(req Request) ([]string, error) {
	if len(req.Images) == 0 {
		return nil, perr.MissingParametersf("at least one image is required")
	}
	size := req.Size
	if size <= 0 {
		size = defaultSize
	}

	out := make([]string, len(req.Images))
	for i, img := range req.Images {
		v := url.Values{}
		v.Set("red", img)
		v.Set("ra", strconv.FormatFloat(req.RA, 'f', -1, 64))
		v.Set("dec", strconv.FormatFloat(req.Dec, 'f', -1, 64))
		v.Set("size", strconv.Itoa(size))
		v.Set("format", "jpeg")
		out[i] = c.opts.BaseURL + "?" + v.Encode()
	}
	return out, nil
}

// Fetch downloads one cutout body. Non-2xx maps to an Upstream error
func (c *Client) Fetch(ctx context.Context, cutoutURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cutoutURL, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "cutout new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "cutout request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("cutout body close failed")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, perr.Upstreamf(resp.StatusCode, "cutout service returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "cutout body read failed")
	}
	return body, nil
}
