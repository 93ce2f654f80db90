package tcgcsv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pokepack/pokepack-tracker/internal/metrics"
)

const defaultBaseURL = "https://tcgcsv.com/tcgplayer/3"

// HTTPClient implements Client against the tcgcsv.com REST mirror.
type HTTPClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithBaseURL overrides the default source endpoint.
func WithBaseURL(u string) Option {
	return func(c *HTTPClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter applied before every request.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *HTTPClient) {
		c.rateLimiter = r
	}
}

// NewHTTPClient creates a source client with a bounded request timeout.
func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resultsEnvelope is the common JSON wrapper on every source resource.
type resultsEnvelope[T any] struct {
	Results []T `json:"results"`
}

// Groups fetches the full group/set listing.
func (c *HTTPClient) Groups(ctx context.Context) ([]Group, error) {
	return fetchResults[Group](ctx, c, c.baseURL+"/groups")
}

// Products fetches the product catalog for one group.
func (c *HTTPClient) Products(ctx context.Context, groupID int) ([]Product, error) {
	return fetchResults[Product](ctx, c, fmt.Sprintf("%s/%d/products", c.baseURL, groupID))
}

// Prices fetches the price-quote catalog for one group.
func (c *HTTPClient) Prices(ctx context.Context, groupID int) ([]PriceRow, error) {
	return fetchResults[PriceRow](ctx, c, fmt.Sprintf("%s/%d/prices", c.baseURL, groupID))
}

func fetchResults[T any](ctx context.Context, c *HTTPClient, url string) ([]T, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
	}

	metrics.SourceRequestsTotal.Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.SourceFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.SourceFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: reading response: %w", ErrSourceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.SourceFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: status %d from %s", ErrSourceUnavailable, resp.StatusCode, url)
	}

	var env resultsEnvelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		metrics.SourceFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: decoding response: %w", ErrSourceUnavailable, err)
	}

	return env.Results, nil
}
