// Package cheapshark builds a deal catalog from the CheapShark public API.
package cheapshark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/dealscope/internal/common"
)

const (
	defaultBaseURL     = "https://www.cheapshark.com/api/1.0"
	defaultHTTPTimeout = 30 * time.Second
	defaultInterval    = time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the API.
type Config struct {
	HTTPClient *http.Client
	BaseURL    string
	Retry      common.RetryOptions
	// Interval is the minimum spacing between requests.
	Interval time.Duration
}

// Client talks to the CheapShark API, one polite request at a time.
type Client struct {
	httpClient httpDoer
	limiter    *rateLimiter
	baseURL    string
	retry      common.RetryOptions
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Client{
		httpClient: doer,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		limiter:    newRateLimiter(interval, 1),
		retry:      cfg.Retry,
	}
}

// Close stops the client's rate limiter.
func (c *Client) Close() {
	c.limiter.Close()
}

// Stores returns a map of store ID to store name.
func (c *Client) Stores(ctx context.Context) (map[string]string, error) {
	var stores []rawStore
	if err := c.getJSON(ctx, "/stores", nil, &stores); err != nil {
		return nil, fmt.Errorf("failed to fetch stores: %w", err)
	}

	names := make(map[string]string, len(stores))
	for _, s := range stores {
		names[s.StoreID] = s.StoreName
	}
	return names, nil
}

// DealsPage fetches one zero-based page of deals.
func (c *Client) DealsPage(ctx context.Context, page, pageSize int, sortBy string) ([]RawDeal, error) {
	params := map[string]string{
		"pageNumber": strconv.Itoa(page),
		"pageSize":   strconv.Itoa(pageSize),
	}
	if sortBy != "" {
		params["sortBy"] = sortBy
	}

	var deals []RawDeal
	if err := c.getJSON(ctx, "/deals", params, &deals); err != nil {
		return nil, fmt.Errorf("failed to fetch deals page %d: %w", page, err)
	}
	return deals, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params map[string]string, out any) error {
	return common.WithRetry(ctx, func() error {
		if err := c.limiter.wait(ctx); err != nil {
			return common.Permanent(err)
		}
		return c.doGet(ctx, path, params, out)
	}, c.retry)
}

func (c *Client) doGet(ctx context.Context, path string, params map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return common.Permanent(fmt.Errorf("failed to build request: %w", err))
	}

	q := req.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return common.Permanent(ctx.Err())
		}
		return &common.RetryableError{Err: err, Retryable: true}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("cheapshark: %w", common.ErrRateLimit)
	case resp.StatusCode >= 500:
		return fmt.Errorf("cheapshark: status %d: %w", resp.StatusCode, common.ErrUpstreamUnavailable)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return common.Permanent(fmt.Errorf("cheapshark: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return common.Permanent(fmt.Errorf("cheapshark: failed to decode response: %w", err))
	}
	return nil
}
