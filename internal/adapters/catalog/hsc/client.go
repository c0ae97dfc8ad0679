package hsc

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "hubcat/internal/platform/errors"
	"hubcat/internal/platform/logger"
)

const (
	defaultTimeout = 30 * time.Second
	defaultUA      = "hubcat"

	// catalog payloads can run large; cap reads defensively
	maxBody = 64 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a stateless catalog client. One blocking GET per call,
// no retries, no caching
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
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
		log:  *logger.Named("hsc"),
	}
}

// BaseURL returns the configured catalog endpoint
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// get issues one GET and returns the body. Non-2xx maps to an Upstream
// error carrying the status
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "hsc new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hsc request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("hsc body close failed")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, perr.Upstreamf(resp.StatusCode, "catalog returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hsc body read failed")
	}

	c.log.Debug().
		Str("url", url).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("catalog fetch")
	return body, nil
}
