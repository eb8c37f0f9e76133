package dmarket

import (
	"crypto/ed25519"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"dmarket-arbitrage-bot/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// setupTestServer creates a test server and a RestClient pointed at it.
func setupTestServer(t *testing.T, handler http.Handler) (*RestClient, *httptest.Server) {
	server := httptest.NewServer(handler)

	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	rc := &RestClient{
		client:    resty.New().SetBaseURL(server.URL),
		publicKey: "test_public_key",
		secretKey: priv,
		logger:    zap.NewNop(),
		limiter:   rate.NewLimiter(rate.Inf, 1),
	}

	return rc, server
}

func TestGetMarketListings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockResponse := `{
			"objects": [
				{
					"itemId": "offer-1",
					"title": "AK-47 | Redline (Field-Tested)",
					"gameId": "a8db",
					"price": {"USD": "1500"},
					"extra": {"floatValue": 0.151, "paintSeed": 661, "tradeLock": 2}
				},
				{
					"itemId": "offer-2",
					"title": "AWP | Asiimov (Field-Tested)",
					"gameId": "a8db",
					"price": {"USD": "4200"}
				}
			],
			"total": "2"
		}`

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, marketItemsPath, r.URL.Path)
			assert.Equal(t, "a8db", r.URL.Query().Get("gameId"))
			assert.Equal(t, "300", r.URL.Query().Get("priceFrom"))
			assert.NotEmpty(t, r.Header.Get("X-Api-Key"))
			assert.NotEmpty(t, r.Header.Get("X-Request-Sign"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(mockResponse))
		})

		rc, server := setupTestServer(t, handler)
		defer server.Close()

		items, err := rc.GetMarketListings("csgo", 300, 50000, 100)

		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "offer-1", items[0].ItemID)
		require.NotNil(t, items[0].Extra)
		assert.Equal(t, 0.151, *items[0].Extra.FloatValue)
		assert.Equal(t, 661, *items[0].Extra.PaintSeed)
		assert.Nil(t, items[1].Extra)
	})

	t.Run("APIError", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code": "BadRequest"}`))
		})

		rc, server := setupTestServer(t, handler)
		defer server.Close()

		items, err := rc.GetMarketListings("csgo", 0, 0, 100)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get market listings")
		assert.Nil(t, items)
	})
}

func TestGetBalance(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, balancePath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"usd": "125000"}`))
	})

	rc, server := setupTestServer(t, handler)
	defer server.Close()

	balance, err := rc.GetBalance()

	assert.NoError(t, err)
	assert.Equal(t, int64(125000), balance)
}

func TestBuyOffer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, buyOffersPath, r.URL.Path)
			assert.Equal(t, http.MethodPatch, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"txId": "tx-123", "status": "TxSuccess"}`))
		})

		rc, server := setupTestServer(t, handler)
		defer server.Close()

		resp, err := rc.BuyOffer("offer-1", 1500)

		assert.NoError(t, err)
		assert.Equal(t, "tx-123", resp.TxID)
	})

	t.Run("TxFailed", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"txId": "", "status": "TxFailed"}`))
		})

		rc, server := setupTestServer(t, handler)
		defer server.Close()

		_, err := rc.BuyOffer("offer-1", 1500)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TxFailed")
	})
}

func TestNewRestClient_KeyValidation(t *testing.T) {
	logger := zap.NewNop()

	t.Run("BadHex", func(t *testing.T) {
		cfg := &config.DMarket{PublicKey: "pub", SecretKey: "not-hex", RateLimit: 10, RateLimitBurst: 5}
		_, err := NewRestClient(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("WrongLength", func(t *testing.T) {
		cfg := &config.DMarket{PublicKey: "pub", SecretKey: "deadbeef", RateLimit: 10, RateLimitBurst: 5}
		_, err := NewRestClient(cfg, logger)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "64 bytes")
	})

	t.Run("Valid", func(t *testing.T) {
		_, priv, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		cfg := &config.DMarket{PublicKey: "pub", SecretKey: hex.EncodeToString(priv), RateLimit: 10, RateLimitBurst: 5}
		rc, err := NewRestClient(cfg, logger)
		assert.NoError(t, err)
		assert.NotNil(t, rc)
	})
}
