package waxpeer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func setupTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	c := &Client{
		client:  resty.New().SetBaseURL(server.URL),
		apiKey:  "test_key",
		logger:  zap.NewNop(),
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	return c, server
}

func TestGetLowestPrice(t *testing.T) {
	t.Run("PicksCheapestExactMatch", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, pricesPath, r.URL.Path)
			assert.Equal(t, "test_key", r.URL.Query().Get("api"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"success": true,
				"items": [
					{"name": "AK-47 | Redline (Field-Tested)", "price": 18500},
					{"name": "AK-47 | Redline (Field-Tested)", "price": 18000},
					{"name": "AK-47 | Redline (Minimal Wear)", "price": 9000}
				]
			}`))
		})

		c, server := setupTestClient(handler)
		defer server.Close()

		price, err := c.GetLowestPrice("AK-47 | Redline (Field-Tested)")

		assert.NoError(t, err)
		// 18000 milli-USD floors to 1800 cents.
		assert.Equal(t, int64(1800), price)
	})

	t.Run("NoListingsIsZeroNotError", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "items": []}`))
		})

		c, server := setupTestClient(handler)
		defer server.Close()

		price, err := c.GetLowestPrice("Some Obscure Item")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), price)
	})

	t.Run("UnsuccessfulResponse", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": false}`))
		})

		c, server := setupTestClient(handler)
		defer server.Close()

		_, err := c.GetLowestPrice("AK-47 | Redline (Field-Tested)")
		assert.Error(t, err)
	})

	t.Run("HTTPError", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		c, server := setupTestClient(handler)
		defer server.Close()

		_, err := c.GetLowestPrice("AK-47 | Redline (Field-Tested)")
		assert.Error(t, err)
	})
}

func TestMilliToMinor(t *testing.T) {
	assert.Equal(t, int64(1800), milliToMinor(18000))
	assert.Equal(t, int64(1), milliToMinor(15))
	assert.Equal(t, int64(0), milliToMinor(9))
}
