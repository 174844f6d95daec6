package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"investment-assistant/config"
	"investment-assistant/internal/dto"
	"investment-assistant/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backfillConfig() *config.Config {
	return &config.Config{
		MarketData: config.MarketData{BackfillTimeout: 2 * time.Second},
	}
}

func fptr(f float64) *float64 { return &f }

func TestTradeIdeaCreateValidation(t *testing.T) {
	svc := NewTradeIdeaService(backfillConfig(), testLogger(t), newStubIdeaRepo(), &stubMarketRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateTradeIdeaRequest{IdeaDescription: "  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.Create(ctx, dto.CreateTradeIdeaRequest{
		IdeaDescription: "short it",
		StopLoss:        fptr(-5),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestTradeIdeaCreateNormalizesAndActivates(t *testing.T) {
	repo := newStubIdeaRepo()
	svc := NewTradeIdeaService(backfillConfig(), testLogger(t), repo, &stubMarketRepo{})

	id, err := svc.Create(context.Background(), dto.CreateTradeIdeaRequest{
		Symbol:          " nvda ",
		IdeaDescription: "momentum continuation",
		EntryPrice:      fptr(0), // explicit zero is allowed and kept
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	require.Len(t, repo.ideas, 1)
	idea := repo.ideas[0]
	assert.Equal(t, "NVDA", idea.Symbol)
	assert.Equal(t, model.TradeIdeaStatusActive, idea.Status)
	require.NotNil(t, idea.EntryPrice)
	assert.Zero(t, *idea.EntryPrice)
	assert.Nil(t, idea.TargetPrice)
}

func TestTradeIdeaListRejectsUnknownStatus(t *testing.T) {
	svc := NewTradeIdeaService(backfillConfig(), testLogger(t), newStubIdeaRepo(), &stubMarketRepo{})

	_, err := svc.List(context.Background(), "archived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.List(context.Background(), "")
	require.NoError(t, err)
}

func TestBackfillCreationPrices(t *testing.T) {
	created := time.Date(2024, time.June, 10, 15, 30, 0, 0, time.UTC)

	repo := newStubIdeaRepo(
		model.TradeIdea{ID: 1, Symbol: "AAPL", IdeaDescription: "has history", Status: model.TradeIdeaStatusActive, CreatedAt: created},
		model.TradeIdea{ID: 2, Symbol: "GHOST", IdeaDescription: "provider knows nothing", Status: model.TradeIdeaStatusActive, CreatedAt: created},
		model.TradeIdea{ID: 3, Symbol: "MSFT", IdeaDescription: "already priced", Status: model.TradeIdeaStatusActive, PriceAtCreation: fptr(400), CreatedAt: created},
		model.TradeIdea{ID: 4, Symbol: "", IdeaDescription: "nothing to look up", Status: model.TradeIdeaStatusActive, CreatedAt: created},
	)

	day := func(d int) int64 {
		return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC).Unix()
	}
	market := &stubMarketRepo{
		histories: map[string]*dto.SymbolHistory{
			"AAPL": {
				Symbol: "AAPL",
				Candles: []dto.Candle{
					{Timestamp: day(7), Close: 196.89},
					{Timestamp: day(10), Close: 193.12},
					{Timestamp: day(11), Close: 207.15}, // after creation, must not win
				},
			},
		},
	}

	svc := NewTradeIdeaService(backfillConfig(), testLogger(t), repo, market)

	result, err := svc.BackfillCreationPrices(context.Background())
	require.NoError(t, err)

	// Only the two ideas with a symbol and no snapshot are candidates.
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Skipped)

	assert.InDelta(t, 193.12, repo.backfilledPrice[1], 1e-9, "close of the creation-day session")
	_, touched := repo.backfilledPrice[2]
	assert.False(t, touched)
	_, touched = repo.backfilledPrice[3]
	assert.False(t, touched)
}

func TestBackfillFallsBackToPriorClose(t *testing.T) {
	// Created on a Sunday: no session that day, the Friday close applies.
	created := time.Date(2024, time.June, 9, 11, 0, 0, 0, time.UTC)

	repo := newStubIdeaRepo(
		model.TradeIdea{ID: 1, Symbol: "AAPL", IdeaDescription: "weekend idea", Status: model.TradeIdeaStatusActive, CreatedAt: created},
	)
	market := &stubMarketRepo{
		histories: map[string]*dto.SymbolHistory{
			"AAPL": {
				Symbol: "AAPL",
				Candles: []dto.Candle{
					{Timestamp: time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC).Unix(), Close: 196.89},
					{Timestamp: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC).Unix(), Close: 193.12},
				},
			},
		},
	}

	svc := NewTradeIdeaService(backfillConfig(), testLogger(t), repo, market)

	result, err := svc.BackfillCreationPrices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.InDelta(t, 196.89, repo.backfilledPrice[1], 1e-9)
}
