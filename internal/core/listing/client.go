package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/artview/internal/core/logging"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 16 << 20
)

// Options configures a listing Client.
type Options struct {
	BaseURL   string        // e.g. https://api.artic.edu/api/v1
	Resource  string        // path segment under BaseURL, e.g. artworks
	Fields    []string      // optional field projection sent as ?fields=
	Timeout   time.Duration // per-request timeout, 0 uses the default
	UserAgent string

	// HTTPClient overrides the client used for requests. Tests use it to
	// point at an httptest server with custom transports.
	HTTPClient *http.Client
}

// Client fetches pages from GET {BaseURL}/{Resource}?page={i}&limit={n}.
// It performs exactly one request per call: no retries, no caching.
type Client[R any] struct {
	endpoint  string
	fields    string
	userAgent string
	http      *http.Client
	log       zerolog.Logger
}

// NewClient creates a listing client decoding records into R.
func NewClient[R any](opts Options) *Client[R] {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client[R]{
		endpoint:  strings.TrimRight(opts.BaseURL, "/") + "/" + strings.Trim(opts.Resource, "/"),
		fields:    strings.Join(opts.Fields, ","),
		userAgent: opts.UserAgent,
		http:      hc,
		log:       logging.Component("listing"),
	}
}

// Endpoint returns the resource URL without query parameters.
func (c *Client[R]) Endpoint() string {
	return c.endpoint
}

type listingResponse[R any] struct {
	Data       []R `json:"data"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

// FetchPage requests the 1-based page pageIndex holding up to pageSize
// records. Any failure is returned as a *FetchError.
func (c *Client[R]) FetchPage(ctx context.Context, pageIndex, pageSize int) (Page[R], error) {
	fail := func(kind FailureKind, status int, err error) (Page[R], error) {
		return Page[R]{}, &FetchError{
			Kind:       kind,
			PageIndex:  pageIndex,
			PageSize:   pageSize,
			StatusCode: status,
			Err:        err,
		}
	}

	reqURL, err := c.pageURL(pageIndex, pageSize)
	if err != nil {
		return fail(FailureTransport, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fail(FailureTransport, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(FailureTransport, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().Ctx(ctx).
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("listing response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fail(FailureStatus, resp.StatusCode, fmt.Errorf("%s", http.StatusText(resp.StatusCode)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fail(FailureTransport, 0, fmt.Errorf("read body: %w", err))
	}

	if err := ValidatePayload(body); err != nil {
		return fail(FailurePayload, 0, err)
	}

	var decoded listingResponse[R]
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fail(FailurePayload, 0, fmt.Errorf("decode records: %w", err))
	}

	return Page[R]{Records: decoded.Data, Total: decoded.Pagination.Total}, nil
}

func (c *Client[R]) pageURL(pageIndex, pageSize int) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("endpoint must be an absolute URL")
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(pageIndex))
	q.Set("limit", strconv.Itoa(pageSize))
	if c.fields != "" {
		q.Set("fields", c.fields)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
