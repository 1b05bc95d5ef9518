package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Veraticus/dealscope/internal/model"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxBodyBytes       = 32 << 20
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPSource fetches the catalog from a URL, bypassing caches.
type HTTPSource struct {
	client httpDoer
	url    string
}

// NewHTTPSource creates an HTTPSource. A nil client gets a default one.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	var doer httpDoer = client
	if client == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTPSource{url: url, client: doer}
}

// Name returns the URL.
func (s *HTTPSource) Name() string {
	return s.url
}

// Load GETs the catalog. Non-2xx responses are failures.
func (s *HTTPSource) Load(ctx context.Context) ([]model.Deal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, Normalize(s.url, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, Normalize(s.url, ctx.Err())
		}
		return nil, Normalize(s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, Normalize(s.url, &HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status})
	}

	deals, err := Decode(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, Normalize(s.url, ctx.Err())
		}
		return nil, Normalize(s.url, err)
	}
	return deals, nil
}
