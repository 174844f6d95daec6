package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"investment-assistant/config"
	"investment-assistant/internal/dto"
	"investment-assistant/internal/repository"
	"investment-assistant/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultQuoteRange = "3mo"

type MarketDataService interface {
	// Quotes fetches each symbol independently; a failed symbol becomes a
	// warning, never an error for the whole view.
	Quotes(ctx context.Context, symbols []string, rng string) (*dto.QuoteView, error)
	Compare(ctx context.Context, symbols []string, rng string) (*dto.ComparisonView, error)
	Search(ctx context.Context, query string) (*dto.SearchView, error)
}

type marketDataService struct {
	cfg            *config.Config
	log            *logger.Logger
	marketDataRepo repository.MarketDataRepository
}

func NewMarketDataService(cfg *config.Config, log *logger.Logger, marketDataRepo repository.MarketDataRepository) MarketDataService {
	return &marketDataService{cfg: cfg, log: log, marketDataRepo: marketDataRepo}
}

func normalizeSymbols(symbols []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// fetchAll pulls histories concurrently, keyed by symbol. Lookup failures
// land in the warnings slice instead of aborting the batch.
func (s *marketDataService) fetchAll(ctx context.Context, symbols []string, rng string) (map[string]*dto.SymbolHistory, []string) {
	var (
		mu        sync.Mutex
		histories = make(map[string]*dto.SymbolHistory)
		warnings  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	limit := s.cfg.MarketData.MaxConcurrentFetch
	if limit <= 0 {
		limit = 4
	}
	g.SetLimit(limit)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			history, err := s.marketDataRepo.GetHistory(gctx, symbol, rng)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.WarnContext(ctx, "Symbol lookup failed",
					zap.String("symbol", symbol), zap.Error(err))
				warnings = append(warnings, fmt.Sprintf("%s: %v", symbol, err))
				return nil
			}
			histories[symbol] = history
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(warnings)
	return histories, warnings
}

// fetchSummaries pulls profile metadata (sector, industry, market cap) for
// the quote view. The metadata is decorative: a failed lookup is logged and
// leaves the fields empty.
func (s *marketDataService) fetchSummaries(ctx context.Context, symbols []string) map[string]*dto.SymbolSummary {
	var (
		mu        sync.Mutex
		summaries = make(map[string]*dto.SymbolSummary)
	)

	g, gctx := errgroup.WithContext(ctx)
	limit := s.cfg.MarketData.MaxConcurrentFetch
	if limit <= 0 {
		limit = 4
	}
	g.SetLimit(limit)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			summary, err := s.marketDataRepo.GetSummary(gctx, symbol)
			if err != nil {
				s.log.WarnContext(ctx, "Summary lookup failed",
					zap.String("symbol", symbol), zap.Error(err))
				return nil
			}
			mu.Lock()
			summaries[symbol] = summary
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return summaries
}

func (s *marketDataService) Quotes(ctx context.Context, symbols []string, rng string) (*dto.QuoteView, error) {
	symbols = normalizeSymbols(symbols)
	if len(symbols) == 0 {
		return nil, invalidf("at least one symbol is required")
	}
	if rng == "" {
		rng = defaultQuoteRange
	}
	if !repository.SupportedRange(rng) {
		return nil, invalidf("unsupported range %q", rng)
	}

	histories, warnings := s.fetchAll(ctx, symbols, rng)

	var resolved []string
	for _, symbol := range symbols {
		if _, ok := histories[symbol]; ok {
			resolved = append(resolved, symbol)
		}
	}
	summaries := s.fetchSummaries(ctx, resolved)

	view := &dto.QuoteView{Range: rng, Warnings: warnings}
	for _, symbol := range resolved {
		history := histories[symbol]
		if len(history.Candles) == 0 {
			view.Warnings = append(view.Warnings, fmt.Sprintf("%s: no price data", symbol))
			continue
		}
		quote := buildQuote(history)
		if summary, ok := summaries[symbol]; ok {
			quote.Sector = summary.Sector
			quote.Industry = summary.Industry
			quote.MarketCap = summary.MarketCap
		}
		view.Quotes = append(view.Quotes, quote)
	}
	return view, nil
}

func buildQuote(history *dto.SymbolHistory) dto.SymbolQuote {
	last := history.Candles[len(history.Candles)-1]

	current := history.MarketPrice
	if current <= 0 {
		current = last.Close
	}

	prevClose := last.Close
	if len(history.Candles) > 1 {
		prevClose = history.Candles[len(history.Candles)-2].Close
	}

	change := current - prevClose
	changePct := 0.0
	if prevClose > 0 {
		changePct = change / prevClose * 100
	}

	return dto.SymbolQuote{
		Symbol:           history.Symbol,
		Name:             history.Name,
		Exchange:         history.Exchange,
		Currency:         history.Currency,
		CurrentPrice:     current,
		Change:           change,
		ChangePercent:    changePct,
		DayHigh:          last.High,
		DayLow:           last.Low,
		FiftyTwoWeekHigh: history.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  history.FiftyTwoWeekLow,
		Candles:          history.Candles,
	}
}

func (s *marketDataService) Compare(ctx context.Context, symbols []string, rng string) (*dto.ComparisonView, error) {
	symbols = normalizeSymbols(symbols)
	if len(symbols) < 2 {
		return nil, invalidf("comparison needs at least two symbols")
	}
	if rng == "" {
		rng = defaultQuoteRange
	}
	if !repository.SupportedRange(rng) {
		return nil, invalidf("unsupported range %q", rng)
	}

	histories, warnings := s.fetchAll(ctx, symbols, rng)

	view := &dto.ComparisonView{Range: rng, Warnings: warnings}
	for _, symbol := range symbols {
		history, ok := histories[symbol]
		if !ok {
			continue
		}
		if len(history.Candles) == 0 {
			view.Warnings = append(view.Warnings, fmt.Sprintf("%s: no price data", symbol))
			continue
		}

		start := history.Candles[0].Close
		end := history.Candles[len(history.Candles)-1].Close

		series := dto.ComparisonSeries{Symbol: symbol}
		for _, candle := range history.Candles {
			series.Timestamps = append(series.Timestamps, candle.Timestamp)
			series.Normalized = append(series.Normalized, candle.Close/start*100)
		}
		view.Series = append(view.Series, series)
		view.Performance = append(view.Performance, dto.SymbolPerformance{
			Symbol:             symbol,
			StartPrice:         start,
			EndPrice:           end,
			TotalReturnPercent: (end - start) / start * 100,
		})
	}
	return view, nil
}

func (s *marketDataService) Search(ctx context.Context, query string) (*dto.SearchView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidf("query is required")
	}

	view := &dto.SearchView{Query: query}
	matches, err := s.marketDataRepo.Search(ctx, query)
	if err != nil {
		// Provider trouble degrades to an empty result with a warning.
		s.log.WarnContext(ctx, "Symbol search failed", zap.String("query", query), zap.Error(err))
		view.Warnings = append(view.Warnings, err.Error())
		return view, nil
	}
	view.Matches = matches
	return view, nil
}
