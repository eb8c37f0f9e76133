package dmarket

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dmarket-arbitrage-bot/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	baseURL = "https://api.dmarket.com"

	marketItemsPath = "/exchange/v1/market/items"
	lastSalesPath   = "/trade-aggregator/v1/last-sales"
	balancePath     = "/account/v1/balance"
	buyOffersPath   = "/exchange/v1/offers-buy"
)

// RestClientInterface defines the DMarket API surface the bot uses.
type RestClientInterface interface {
	GetMarketListings(game string, priceFrom, priceTo int64, limit int) ([]MarketItem, error)
	GetLastSales(game, title string) ([]Sale, error)
	GetBalance() (int64, error)
	BuyOffer(offerID string, price int64) (*BuyOfferResponse, error)
}

// RestClient is a client for the DMarket REST API.
type RestClient struct {
	client    *resty.Client
	publicKey string
	secretKey ed25519.PrivateKey
	logger    *zap.Logger
	limiter   *rate.Limiter
}

var _ RestClientInterface = (*RestClient)(nil)

// NewRestClient creates a new DMarket REST API client. The secret key is the
// hex-encoded ed25519 private key from the DMarket trading API settings.
func NewRestClient(cfg *config.DMarket, logger *zap.Logger) (*RestClient, error) {
	raw, err := hex.DecodeString(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("dmarket secret key is not valid hex: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("dmarket secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}

	client := resty.New().SetBaseURL(baseURL)
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	return &RestClient{
		client:    client,
		publicKey: cfg.PublicKey,
		secretKey: ed25519.PrivateKey(raw),
		logger:    logger,
		limiter:   limiter,
	}, nil
}

// sign produces the request signature DMarket expects: an ed25519 signature
// over method + path-with-query + body + timestamp, hex encoded.
func (c *RestClient) sign(method, pathWithQuery, body, timestamp string) string {
	msg := method + pathWithQuery + body + timestamp
	return hex.EncodeToString(ed25519.Sign(c.secretKey, []byte(msg)))
}

// doRequest executes a signed request with rate limiting and retry on 429 and
// server errors.
func (c *RestClient) doRequest(ctx context.Context, method, pathWithQuery, body string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		timestamp := strconv.FormatInt(time.Now().Unix(), 10)
		req.SetHeader("X-Api-Key", c.publicKey)
		req.SetHeader("X-Sign-Date", timestamp)
		req.SetHeader("X-Request-Sign", "dmar ed25519 "+c.sign(method, pathWithQuery, body, timestamp))

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+pathWithQuery))
		resp, err = req.Execute(method, pathWithQuery)

		if err == nil && !resp.IsError() {
			return resp, nil
		}

		shouldRetry := false
		var retryAfter time.Duration

		if resp != nil {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests {
				shouldRetry = true
				if seconds, err := strconv.Atoi(resp.Header().Get("Retry-After")); err == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 {
				shouldRetry = true
			}
		} else {
			shouldRetry = true
		}

		if !shouldRetry {
			return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), resp.String())
		}

		if retryAfter == 0 {
			retryAfter = time.Duration(math.Pow(2, float64(i))) * time.Second
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
			continue
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
}

// GetMarketListings fetches open offers for a game, cheapest first. Prices
// are USD minor units; zero bounds mean "no bound".
func (c *RestClient) GetMarketListings(game string, priceFrom, priceTo int64, limit int) ([]MarketItem, error) {
	q := url.Values{}
	q.Set("gameId", gameID(game))
	q.Set("currency", "USD")
	q.Set("orderBy", "price")
	q.Set("orderDir", "asc")
	q.Set("limit", strconv.Itoa(limit))
	if priceFrom > 0 {
		q.Set("priceFrom", strconv.FormatInt(priceFrom, 10))
	}
	if priceTo > 0 {
		q.Set("priceTo", strconv.FormatInt(priceTo, 10))
	}
	pathWithQuery := marketItemsPath + "?" + q.Encode()

	req := c.client.R().SetResult(&MarketItemsResponse{})
	resp, err := c.doRequest(context.Background(), http.MethodGet, pathWithQuery, "", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get market listings: %w", err)
	}

	result := resp.Result().(*MarketItemsResponse)
	return result.Objects, nil
}

// GetLastSales fetches the recent sales of one item title.
func (c *RestClient) GetLastSales(game, title string) ([]Sale, error) {
	q := url.Values{}
	q.Set("gameId", gameID(game))
	q.Set("title", title)
	q.Set("limit", "100")
	pathWithQuery := lastSalesPath + "?" + q.Encode()

	req := c.client.R().SetResult(&LastSalesResponse{})
	resp, err := c.doRequest(context.Background(), http.MethodGet, pathWithQuery, "", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get last sales for %q: %w", title, err)
	}

	result := resp.Result().(*LastSalesResponse)
	return result.Sales, nil
}

// GetBalance returns the account's USD balance in minor units.
func (c *RestClient) GetBalance() (int64, error) {
	req := c.client.R().SetResult(&BalanceResponse{})
	resp, err := c.doRequest(context.Background(), http.MethodGet, balancePath, "", req)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	result := resp.Result().(*BalanceResponse)
	usd, err := decimal.NewFromString(result.USD)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance %q: %w", result.USD, err)
	}
	return usd.IntPart(), nil
}

// BuyOffer attempts to buy one offer at the given price. The price must match
// the listing exactly or DMarket rejects the purchase.
func (c *RestClient) BuyOffer(offerID string, price int64) (*BuyOfferResponse, error) {
	payload := map[string]any{
		"offers": []map[string]any{
			{
				"offerId": offerID,
				"price": map[string]string{
					"amount":   strconv.FormatInt(price, 10),
					"currency": "USD",
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode buy request: %w", err)
	}

	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&BuyOfferResponse{})
	resp, err := c.doRequest(context.Background(), http.MethodPatch, buyOffersPath, string(body), req)
	if err != nil {
		return nil, fmt.Errorf("failed to buy offer %s: %w", offerID, err)
	}

	result := resp.Result().(*BuyOfferResponse)
	if result.Status != "TxSuccess" {
		return result, fmt.Errorf("buy offer %s finished with status %q", offerID, result.Status)
	}
	return result, nil
}

// gameID maps the bot's canonical game tags to DMarket gameId values.
func gameID(game string) string {
	switch game {
	case "csgo":
		return GameIDCS
	case "dota2":
		return GameIDDota
	case "rust":
		return GameIDRust
	case "tf2":
		return GameIDTF2
	default:
		return game
	}
}
