package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"investment-assistant/config"
	"investment-assistant/internal/dto"
	"investment-assistant/pkg/httpclient"
	"investment-assistant/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Ranges accepted by the history lookup, matching the provider's own
// chart periods.
var supportedRanges = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
}

func SupportedRange(r string) bool {
	return supportedRanges[r]
}

type MarketDataRepository interface {
	// GetHistory fetches the daily price series plus descriptive metadata
	// for one symbol. Any provider failure comes back as an error for the
	// caller to degrade on; nothing is retried.
	GetHistory(ctx context.Context, symbol, rng string) (*dto.SymbolHistory, error)
	// GetSummary fetches the descriptive profile of one symbol: sector,
	// industry, market cap. Kept separate from GetHistory so price-only
	// callers do not pay for a second provider round trip.
	GetSummary(ctx context.Context, symbol string) (*dto.SymbolSummary, error)
	// Search resolves free text into candidate ticker symbols.
	Search(ctx context.Context, query string) ([]dto.SymbolMatch, error)
}

type marketDataRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewMarketDataRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	perMinute := cfg.MarketData.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	secondsPerRequest := time.Minute / time.Duration(perMinute)

	return &marketDataRepository{
		httpClient:     httpclient.New(cfg.MarketData.BaseURL, cfg.MarketData.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

func browserHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
		"Accept":          "application/json, text/plain, */*",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         "https://finance.yahoo.com/",
	}
}

func (r *marketDataRepository) GetHistory(ctx context.Context, symbol, rng string) (*dto.SymbolHistory, error) {
	if !SupportedRange(rng) {
		return nil, fmt.Errorf("unsupported range: %s", rng)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := "/v8/finance/chart/" + symbol
	queryParams := map[string]string{
		"range":          rng,
		"interval":       "1d",
		"includePrePost": "false",
		"events":         "div,split",
	}

	var chartResp dto.YahooChartResponse
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, browserHeaders(), &chartResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", symbol, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("Market data provider returned non-OK status",
			zap.String("symbol", symbol),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("market data provider returned status %d for %s", resp.StatusCode, symbol)
	}

	if chartResp.Chart.Error != nil {
		return nil, fmt.Errorf("market data provider error for %s: %v", symbol, chartResp.Chart.Error)
	}

	if len(chartResp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no data returned for symbol: %s", symbol)
	}

	result := chartResp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data available for symbol: %s", symbol)
	}

	quote := result.Indicators.Quote[0]
	var candles []dto.Candle
	for i, timestamp := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) ||
			i >= len(quote.Close) || i >= len(quote.Volume) {
			continue
		}
		// A zero close marks a missing session.
		if quote.Close[i] == 0 {
			continue
		}
		candles = append(candles, dto.Candle{
			Timestamp: timestamp,
			Open:      quote.Open[i],
			High:      quote.High[i],
			Low:       quote.Low[i],
			Close:     quote.Close[i],
			Volume:    quote.Volume[i],
		})
	}

	if len(candles) == 0 {
		return nil, fmt.Errorf("no valid price data found for symbol: %s", symbol)
	}

	meta := result.Meta
	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}

	return &dto.SymbolHistory{
		Symbol:           symbol,
		Name:             name,
		Exchange:         meta.FullExchangeName,
		Currency:         meta.Currency,
		MarketPrice:      meta.RegularMarketPrice,
		FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
		Range:            rng,
		Candles:          candles,
	}, nil
}

func (r *marketDataRepository) GetSummary(ctx context.Context, symbol string) (*dto.SymbolSummary, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := "/v10/finance/quoteSummary/" + symbol
	queryParams := map[string]string{
		"modules": "summaryProfile,price",
	}

	var summaryResp dto.YahooQuoteSummaryResponse
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, browserHeaders(), &summaryResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summary for %s: %w", symbol, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data provider returned status %d for %s", resp.StatusCode, symbol)
	}

	if summaryResp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("market data provider error for %s: %v", symbol, summaryResp.QuoteSummary.Error)
	}

	if len(summaryResp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no summary returned for symbol: %s", symbol)
	}

	result := summaryResp.QuoteSummary.Result[0]
	return &dto.SymbolSummary{
		Symbol:    symbol,
		Sector:    result.SummaryProfile.Sector,
		Industry:  result.SummaryProfile.Industry,
		MarketCap: result.Price.MarketCap.Raw,
	}, nil
}

func (r *marketDataRepository) Search(ctx context.Context, query string) ([]dto.SymbolMatch, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	queryParams := map[string]string{
		"q":           query,
		"quotesCount": "10",
		"newsCount":   "0",
	}

	var searchResp dto.YahooSearchResponse
	resp, err := r.httpClient.Get(ctx, "/v1/finance/search", queryParams, browserHeaders(), &searchResp)
	if err != nil {
		return nil, fmt.Errorf("symbol search failed for %q: %w", query, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("symbol search returned status %d for %q", resp.StatusCode, query)
	}

	matches := make([]dto.SymbolMatch, 0, len(searchResp.Quotes))
	for _, q := range searchResp.Quotes {
		if q.Symbol == "" {
			continue
		}
		name := q.LongName
		if name == "" {
			name = q.ShortName
		}
		matches = append(matches, dto.SymbolMatch{
			Symbol:   q.Symbol,
			Name:     name,
			Exchange: q.Exchange,
			Type:     q.QuoteType,
			Sector:   q.Sector,
			Industry: q.Industry,
		})
	}
	return matches, nil
}
