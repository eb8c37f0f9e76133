// Package waxpeer implements the cross-platform price lookup used as the
// sell-price estimate when evaluating DMarket listings.
package waxpeer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"dmarket-arbitrage-bot/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	baseURL         = "https://api.waxpeer.com"
	pricesPath      = "/v1/search-items-by-name"
	listedItemsPath = "/v1/get-items-list"
)

// PriceClientInterface is the quote lookup surface the engine uses.
type PriceClientInterface interface {
	GetLowestPrice(name string) (int64, error)
}

// priceItem is one listed item in a Waxpeer search response. Prices come in
// 1/1000 USD.
type priceItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type searchResponse struct {
	Success bool        `json:"success"`
	Items   []priceItem `json:"items"`
}

// Client is a client for the Waxpeer price API.
type Client struct {
	client  *resty.Client
	apiKey  string
	logger  *zap.Logger
	limiter *rate.Limiter
}

var _ PriceClientInterface = (*Client)(nil)

// NewClient creates a Waxpeer API client.
func NewClient(cfg *config.Waxpeer, logger *zap.Logger) *Client {
	return &Client{
		client:  resty.New().SetBaseURL(baseURL),
		apiKey:  cfg.APIKey,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
	}
}

// GetLowestPrice returns the cheapest current Waxpeer listing for an item
// name, in USD minor units. A name with no listings returns 0 and no error;
// the caller treats 0 as "no sell quote".
func (c *Client) GetLowestPrice(name string) (int64, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return 0, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	q := url.Values{}
	q.Set("api", c.apiKey)
	q.Set("names", name)

	var result searchResponse
	resp, err := c.client.R().
		SetQueryParamsFromValues(q).
		SetResult(&result).
		Execute(http.MethodGet, pricesPath)
	if err != nil {
		return 0, fmt.Errorf("failed to search waxpeer prices for %q: %w", name, err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("waxpeer price search for %q failed with status %s", name, resp.Status())
	}
	if !result.Success {
		return 0, fmt.Errorf("waxpeer price search for %q was not successful", name)
	}

	var lowest int64
	for _, item := range result.Items {
		if item.Name != name || item.Price <= 0 {
			continue
		}
		if lowest == 0 || item.Price < lowest {
			lowest = item.Price
		}
	}
	if lowest == 0 {
		c.logger.Debug("No waxpeer listings for item", zap.String("name", name))
		return 0, nil
	}

	return milliToMinor(lowest), nil
}

// milliToMinor converts Waxpeer's 1/1000 USD prices to minor units (cents),
// rounding down so quotes are never optimistic.
func milliToMinor(milli int64) int64 {
	return decimal.NewFromInt(milli).Div(decimal.NewFromInt(10)).Floor().IntPart()
}
