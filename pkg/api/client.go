package api

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"

	"beauty-trends/pkg/logger"
)

// HTTPProvider fetches interest series from a trends proxy over fasthttp
type HTTPProvider struct {
	endpoints   *EndpointPool
	apiKey      string
	connManager *ConnectionManager
	now         func() time.Time
	log         *logger.Logger

	totalRequests  atomic.Uint64
	failedRequests atomic.Uint64
}

// ClientStats are the provider's request counters
type ClientStats struct {
	TotalRequests  uint64 `json:"total_requests"`
	FailedRequests uint64 `json:"failed_requests"`
}

// NewHTTPProvider creates a provider for one or more comma-separated endpoints
func NewHTTPProvider(endpoints, apiKey string) *HTTPProvider {
	return NewHTTPProviderWithConfig(endpoints, apiKey, DefaultConnectionConfig())
}

// NewHTTPProviderWithConfig creates a provider with custom connection settings
func NewHTTPProviderWithConfig(endpoints, apiKey string, connConfig ConnectionConfig) *HTTPProvider {
	return &HTTPProvider{
		endpoints:   NewEndpointPool(endpoints),
		apiKey:      apiKey,
		connManager: NewConnectionManager(connConfig),
		now:         time.Now,
		log:         logger.GetLogger().WithField("component", "trends_provider"),
	}
}

// Fetch performs a single request for keyword. Every failure is a *ProviderError.
func (c *HTTPProvider) Fetch(ctx context.Context, keyword string, query Query) (*TrendData, error) {
	c.totalRequests.Add(1)
	start := time.Now()

	data, err := c.fetch(ctx, keyword, query.withDefaults())
	if err != nil {
		c.failedRequests.Add(1)
		return nil, err
	}

	c.log.WithFields(map[string]interface{}{
		"keyword":     keyword,
		"samples":     data.Series.Len(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Trends query completed")
	return data, nil
}

func (c *HTTPProvider) fetch(ctx context.Context, keyword string, query Query) (*TrendData, error) {
	if err := ctx.Err(); err != nil {
		return nil, newProviderError(keyword, KindNetwork, err)
	}

	endpoint := c.endpoints.Next()
	if endpoint == "" {
		return nil, newProviderError(keyword, KindNetwork, fmt.Errorf("no provider endpoint configured"))
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(endpoint)
	args := req.URI().QueryArgs()
	args.Set("keyword", keyword)
	args.Set("timeframe", query.Timeframe)
	args.Set("geo", query.Geo)
	args.Set("hl", query.Language)
	args.Set("tz", strconv.Itoa(query.TZ))

	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.log.WithFields(map[string]interface{}{
		"keyword":  keyword,
		"endpoint": logger.MaskEndpoint(endpoint),
	}).Debug("Querying trends provider")

	timeout := c.connManager.RequestTimeout()
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.connManager.GetFastHTTPClient().DoTimeout(req, resp, timeout); err != nil {
		return nil, newProviderError(keyword, classifyTransport(err),
			fmt.Errorf("request to %s failed: %w", logger.MaskEndpoint(endpoint), err))
	}

	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		body := resp.Body()
		return nil, newProviderError(keyword, classifyStatus(status),
			fmt.Errorf("provider returned status %d: %s", status, logger.MaskSecrets(string(body[:min(len(body), 200)]))))
	}

	return ParseResponse(keyword, resp.Body(), c.now())
}

// Stats returns the request counters
func (c *HTTPProvider) Stats() ClientStats {
	return ClientStats{
		TotalRequests:  c.totalRequests.Load(),
		FailedRequests: c.failedRequests.Load(),
	}
}

// Close releases idle connections
func (c *HTTPProvider) Close() {
	c.connManager.Close()
}
