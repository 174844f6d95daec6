package repository

import (
	"context"
	"testing"
	"time"

	"investment-assistant/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func seedIdea(t *testing.T, repo *Repository, idea model.TradeIdea) model.TradeIdea {
	t.Helper()
	require.NoError(t, repo.TradeIdeaRepo.Create(context.Background(), &idea))
	return idea
}

func fetchIdea(t *testing.T, repo *Repository, id uint) model.TradeIdea {
	t.Helper()
	ideas, err := repo.TradeIdeaRepo.List(context.Background(), nil)
	require.NoError(t, err)
	for _, idea := range ideas {
		if idea.ID == id {
			return idea
		}
	}
	t.Fatalf("idea %d not found", id)
	return model.TradeIdea{}
}

func TestTradeIdeaListFiltersByStatus(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	seedIdea(t, repo, model.TradeIdea{Symbol: "AAPL", IdeaDescription: "buy the dip", Status: model.TradeIdeaStatusActive, CreatedAt: base})
	seedIdea(t, repo, model.TradeIdea{Symbol: "MSFT", IdeaDescription: "earnings play", Status: model.TradeIdeaStatusCompleted, CreatedAt: base.Add(time.Hour)})
	seedIdea(t, repo, model.TradeIdea{Symbol: "NVDA", IdeaDescription: "momentum", Status: model.TradeIdeaStatusActive, CreatedAt: base.Add(2 * time.Hour)})

	all, err := repo.TradeIdeaRepo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "NVDA", all[0].Symbol)
	assert.Equal(t, "AAPL", all[2].Symbol)

	active := model.TradeIdeaStatusActive
	filtered, err := repo.TradeIdeaRepo.List(ctx, &active)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "NVDA", filtered[0].Symbol)
	assert.Equal(t, "AAPL", filtered[1].Symbol)
}

func TestTradeIdeaListMissingCreationPrice(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	missing := seedIdea(t, repo, model.TradeIdea{Symbol: "AAPL", IdeaDescription: "no price yet", Status: model.TradeIdeaStatusActive})
	seedIdea(t, repo, model.TradeIdea{Symbol: "MSFT", IdeaDescription: "already priced", Status: model.TradeIdeaStatusActive, PriceAtCreation: floatPtr(402.5)})
	seedIdea(t, repo, model.TradeIdea{Symbol: "", IdeaDescription: "no symbol, nothing to look up", Status: model.TradeIdeaStatusActive})

	ideas, err := repo.TradeIdeaRepo.ListMissingCreationPrice(ctx)
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, missing.ID, ideas[0].ID)
}

func TestTradeIdeaPriceBackfillDoesNotTouchUpdatedAt(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	idea := seedIdea(t, repo, model.TradeIdea{Symbol: "AAPL", IdeaDescription: "swing trade", Status: model.TradeIdeaStatusActive})

	before := idea.UpdatedAt

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, repo.TradeIdeaRepo.UpdatePriceAtCreation(ctx, idea.ID, 189.30))

	got := fetchIdea(t, repo, idea.ID)
	require.NotNil(t, got.PriceAtCreation)
	assert.Equal(t, 189.30, *got.PriceAtCreation)
	assert.True(t, got.UpdatedAt.Equal(before), "backfill must not look like an edit")

	// A real status change does bump it.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, repo.TradeIdeaRepo.UpdateStatus(ctx, idea.ID, model.TradeIdeaStatusCompleted))

	got = fetchIdea(t, repo, idea.ID)
	assert.Equal(t, model.TradeIdeaStatusCompleted, got.Status)
	assert.True(t, got.UpdatedAt.After(before))
}

func TestTradeIdeaDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	idea := seedIdea(t, repo, model.TradeIdea{Symbol: "TSLA", IdeaDescription: "gone soon", Status: model.TradeIdeaStatusActive})
	require.NoError(t, repo.TradeIdeaRepo.Delete(ctx, idea.ID))

	ideas, err := repo.TradeIdeaRepo.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, ideas)
}
