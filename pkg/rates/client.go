// Package rates fetches the USDT/KRW exchange rate used to quote
// stablecoin deposits.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultURL is the public tether quote endpoint.
const DefaultURL = "https://api.coingecko.com/api/v3/simple/price?ids=tether&vs_currencies=krw"

type Client struct {
	url        string
	fallback   float64
	httpClient *http.Client
	logger     *zap.Logger

	mu        sync.RWMutex
	lastRate  float64
	fetchedAt time.Time
}

func NewClient(url string, fallback float64, timeout time.Duration, logger *zap.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if fallback <= 0 {
		fallback = 1450
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:      url,
		fallback: fallback,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// quoteResponse mirrors the coingecko simple-price shape.
type quoteResponse struct {
	Tether struct {
		KRW float64 `json:"krw"`
	} `json:"tether"`
}

// USDTKRW returns the current rate. A failed fetch falls back to the
// last successful quote, then to the configured static rate, so a quote
// is always available.
func (c *Client) USDTKRW(ctx context.Context) float64 {
	rate, err := c.fetch(ctx)
	if err == nil {
		c.mu.Lock()
		c.lastRate = rate
		c.fetchedAt = time.Now()
		c.mu.Unlock()
		return rate
	}

	c.logger.Warn("Rate fetch failed, using cached or fallback rate", zap.Error(err))

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastRate > 0 {
		return c.lastRate
	}
	return c.fallback
}

func (c *Client) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var quote quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	if quote.Tether.KRW <= 0 {
		return 0, fmt.Errorf("quote missing tether.krw")
	}
	return quote.Tether.KRW, nil
}
