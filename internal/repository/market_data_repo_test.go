package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"investment-assistant/config"
	"investment-assistant/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartFixture = `{
	"chart": {
		"result": [{
			"meta": {
				"symbol": "AAPL",
				"currency": "USD",
				"fullExchangeName": "NasdaqGS",
				"longName": "Apple Inc.",
				"regularMarketPrice": 191.5,
				"chartPreviousClose": 188.0,
				"fiftyTwoWeekHigh": 199.6,
				"fiftyTwoWeekLow": 164.1
			},
			"timestamp": [1704412800, 1704499200, 1704585600],
			"indicators": {
				"quote": [{
					"open":   [187.0, 189.2, 0],
					"high":   [190.1, 191.9, 0],
					"low":    [186.5, 188.4, 0],
					"close":  [189.0, 191.5, 0],
					"volume": [52000000, 48000000, 0]
				}]
			}
		}],
		"error": null
	}
}`

const searchFixture = `{
	"quotes": [
		{"symbol": "AAPL", "longname": "Apple Inc.", "exchange": "NMS", "quoteType": "EQUITY", "sector": "Technology"},
		{"symbol": "", "longname": "ghost row without symbol"},
		{"symbol": "APLE", "shortname": "Apple Hospitality REIT", "exchange": "NYQ", "quoteType": "EQUITY"}
	]
}`

func newMarketRepo(t *testing.T, handler http.Handler) MarketDataRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log, err := logger.New("error", "console")
	require.NoError(t, err)

	cfg := &config.Config{
		MarketData: config.MarketData{
			BaseURL:             server.URL,
			Timeout:             2 * time.Second,
			MaxRequestPerMinute: 600,
		},
	}
	return NewMarketDataRepository(cfg, log)
}

func TestMarketDataGetHistory(t *testing.T) {
	repo := newMarketRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.Equal(t, "1mo", r.URL.Query().Get("range"))
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chartFixture))
	}))

	history, err := repo.GetHistory(context.Background(), "AAPL", "1mo")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", history.Symbol)
	assert.Equal(t, "Apple Inc.", history.Name)
	assert.Equal(t, "NasdaqGS", history.Exchange)
	assert.Equal(t, "USD", history.Currency)
	assert.Equal(t, 191.5, history.MarketPrice)

	// The zero-close third session is a data gap and gets dropped.
	require.Len(t, history.Candles, 2)
	assert.Equal(t, 189.0, history.Candles[0].Close)
	assert.Equal(t, 191.5, history.Candles[1].Close)
}

func TestMarketDataGetHistoryRejectsBadRange(t *testing.T) {
	repo := newMarketRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unsupported range")
	}))

	_, err := repo.GetHistory(context.Background(), "AAPL", "7d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported range")
}

func TestMarketDataGetHistoryProviderErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		repo := newMarketRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))

		_, err := repo.GetHistory(context.Background(), "AAPL", "1mo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("chart error payload", func(t *testing.T) {
		repo := newMarketRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart": {"result": [], "error": {"code": "Not Found", "description": "No data found"}}}`))
		}))

		_, err := repo.GetHistory(context.Background(), "NOPE", "1mo")
		require.Error(t, err)
	})

	t.Run("empty result", func(t *testing.T) {
		repo := newMarketRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart": {"result": [], "error": null}}`))
		}))

		_, err := repo.GetHistory(context.Background(), "NOPE", "1mo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no data returned")
	})
}

const summaryFixture = `{
	"quoteSummary": {
		"result": [{
			"summaryProfile": {
				"sector": "Technology",
				"industry": "Consumer Electronics"
			},
			"price": {
				"marketCap": {"raw": 2950000000000, "fmt": "2.95T"}
			}
		}],
		"error": null
	}
}`

func TestMarketDataGetSummary(t *testing.T) {
	repo := newMarketRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v10/finance/quoteSummary/AAPL", r.URL.Path)
		assert.Equal(t, "summaryProfile,price", r.URL.Query().Get("modules"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(summaryFixture))
	}))

	summary, err := repo.GetSummary(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", summary.Symbol)
	assert.Equal(t, "Technology", summary.Sector)
	assert.Equal(t, "Consumer Electronics", summary.Industry)
	assert.InDelta(t, 2.95e12, summary.MarketCap, 1)
}

func TestMarketDataGetSummaryProviderError(t *testing.T) {
	repo := newMarketRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"quoteSummary": {"result": [], "error": {"code": "Not Found", "description": "Quote not found"}}}`))
	}))

	_, err := repo.GetSummary(context.Background(), "NOPE")
	require.Error(t, err)
}

func TestMarketDataSearch(t *testing.T) {
	repo := newMarketRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/finance/search", r.URL.Path)
		assert.Equal(t, "apple", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchFixture))
	}))

	matches, err := repo.Search(context.Background(), "apple")
	require.NoError(t, err)

	// The symbol-less row is dropped.
	require.Len(t, matches, 2)
	assert.Equal(t, "AAPL", matches[0].Symbol)
	assert.Equal(t, "Apple Inc.", matches[0].Name)
	assert.Equal(t, "Technology", matches[0].Sector)
	assert.Equal(t, "APLE", matches[1].Symbol)
	assert.Equal(t, "Apple Hospitality REIT", matches[1].Name)
}

func TestSupportedRange(t *testing.T) {
	assert.True(t, SupportedRange("1d"))
	assert.True(t, SupportedRange("ytd"))
	assert.True(t, SupportedRange("max"))
	assert.False(t, SupportedRange("7d"))
	assert.False(t, SupportedRange(""))
}
