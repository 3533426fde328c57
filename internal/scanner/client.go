package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StatusFetcher defines the interface for fetching backend status.
// This interface is implemented by *Client and can be used for testing.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (*SystemStatus, error)
}

// Ensure Client implements StatusFetcher at compile time.
var _ StatusFetcher = (*Client)(nil)

// Client talks to the scanner backend's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8000"
	defaultUserAgent = "atalaya/0.1"
	requestTimeout   = 5 * time.Second

	// scanPageSize is the fixed page size sent with every scan request.
	scanPageSize = 50
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchStatus retrieves database and worker status information.
func (c *Client) FetchStatus(ctx context.Context) (*SystemStatus, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SystemStatus
	if err := c.do(ctx, http.MethodGet, "/api/status", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ScanFilter selects which result track a scan request hits. When
// Darwinex is set the numeric minimum is ignored and the darwinex
// track's own fixed threshold (0) applies.
type ScanFilter struct {
	Darwinex bool
	MinScore int
}

// FetchScan retrieves one ranked result set for the given filter.
func (c *Client) FetchScan(ctx context.Context, filter ScanFilter) (*ScanResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	path := "/api/scan"
	minScore := filter.MinScore
	if filter.Darwinex {
		path = "/api/scan-darwinex"
		minScore = 0
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(scanPageSize))
	values.Set("min_score", strconv.Itoa(minScore))
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	var payload ScanResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchAnalysis retrieves the full analysis record for one symbol. The
// symbol is uppercased before the request, matching the backend's own
// normalization.
func (c *Client) FetchAnalysis(ctx context.Context, symbol string) (*StockAnalysis, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	cleaned := strings.ToUpper(strings.TrimSpace(symbol))
	if cleaned == "" {
		return nil, fmt.Errorf("symbol required")
	}
	rel := &url.URL{Path: "/api/analyze/" + cleaned}
	var payload StockAnalysis
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TriggerUpdate asks the backend to start a database update in the
// background. Success means the request was accepted, not that the scan
// completed.
func (c *Client) TriggerUpdate(ctx context.Context) (*UpdateResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload UpdateResponse
	if err := c.do(ctx, http.MethodPost, "/api/update-db", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{URL: rel.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{URL: rel.String(), Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return &DecodeError{URL: rel.String(), Err: err}
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
