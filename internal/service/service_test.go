package service

import (
	"context"
	"fmt"
	"testing"

	"investment-assistant/internal/dto"
	"investment-assistant/internal/model"
	"investment-assistant/pkg/logger"

	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

// stubTradeRepo records appended trades in memory.
type stubTradeRepo struct {
	trades []model.Trade
}

func (s *stubTradeRepo) Create(_ context.Context, trade *model.Trade) error {
	trade.ID = uint(len(s.trades) + 1)
	s.trades = append(s.trades, *trade)
	return nil
}

func (s *stubTradeRepo) List(_ context.Context, limit int) ([]model.Trade, error) {
	if limit > len(s.trades) {
		limit = len(s.trades)
	}
	return s.trades[:limit], nil
}

func (s *stubTradeRepo) ListBySymbol(_ context.Context, symbol string) ([]model.Trade, error) {
	var out []model.Trade
	for _, trade := range s.trades {
		if trade.Symbol == symbol {
			out = append(out, trade)
		}
	}
	return out, nil
}

func (s *stubTradeRepo) Statistics(_ context.Context) (*model.TradeStatistics, error) {
	stats := &model.TradeStatistics{TotalTrades: int64(len(s.trades))}
	for _, trade := range s.trades {
		stats.TotalAmount += trade.Amount
		switch trade.TradeType {
		case model.TradeTypeBuy:
			stats.BuyAmount += trade.Amount
		case model.TradeTypeSell:
			stats.SellAmount += trade.Amount
		}
	}
	stats.NetAmount = stats.BuyAmount - stats.SellAmount
	return stats, nil
}

// stubIdeaRepo holds trade ideas in memory and records backfill writes.
type stubIdeaRepo struct {
	ideas           []model.TradeIdea
	backfilledPrice map[uint]float64
}

func newStubIdeaRepo(ideas ...model.TradeIdea) *stubIdeaRepo {
	return &stubIdeaRepo{ideas: ideas, backfilledPrice: make(map[uint]float64)}
}

func (s *stubIdeaRepo) Create(_ context.Context, idea *model.TradeIdea) error {
	idea.ID = uint(len(s.ideas) + 1)
	s.ideas = append(s.ideas, *idea)
	return nil
}

func (s *stubIdeaRepo) List(_ context.Context, status *model.TradeIdeaStatus) ([]model.TradeIdea, error) {
	var out []model.TradeIdea
	for _, idea := range s.ideas {
		if status == nil || idea.Status == *status {
			out = append(out, idea)
		}
	}
	return out, nil
}

func (s *stubIdeaRepo) ListMissingCreationPrice(_ context.Context) ([]model.TradeIdea, error) {
	var out []model.TradeIdea
	for _, idea := range s.ideas {
		if idea.Symbol != "" && idea.PriceAtCreation == nil {
			out = append(out, idea)
		}
	}
	return out, nil
}

func (s *stubIdeaRepo) UpdateStatus(_ context.Context, id uint, status model.TradeIdeaStatus) error {
	for i := range s.ideas {
		if s.ideas[i].ID == id {
			s.ideas[i].Status = status
			return nil
		}
	}
	return nil
}

func (s *stubIdeaRepo) UpdatePriceAtCreation(_ context.Context, id uint, price float64) error {
	s.backfilledPrice[id] = price
	for i := range s.ideas {
		if s.ideas[i].ID == id {
			s.ideas[i].PriceAtCreation = &price
		}
	}
	return nil
}

func (s *stubIdeaRepo) Delete(_ context.Context, id uint) error {
	for i := range s.ideas {
		if s.ideas[i].ID == id {
			s.ideas = append(s.ideas[:i], s.ideas[i+1:]...)
			return nil
		}
	}
	return nil
}

// stubMarketRepo serves canned histories per symbol; missing symbols fail
// the way the live provider does.
type stubMarketRepo struct {
	histories map[string]*dto.SymbolHistory
	summaries map[string]*dto.SymbolSummary
	matches   []dto.SymbolMatch
	searchErr error
}

func (s *stubMarketRepo) GetHistory(_ context.Context, symbol, rng string) (*dto.SymbolHistory, error) {
	history, ok := s.histories[symbol]
	if !ok {
		return nil, fmt.Errorf("no data returned for symbol: %s", symbol)
	}
	return history, nil
}

func (s *stubMarketRepo) GetSummary(_ context.Context, symbol string) (*dto.SymbolSummary, error) {
	summary, ok := s.summaries[symbol]
	if !ok {
		return nil, fmt.Errorf("no summary returned for symbol: %s", symbol)
	}
	return summary, nil
}

func (s *stubMarketRepo) Search(_ context.Context, query string) ([]dto.SymbolMatch, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.matches, nil
}
