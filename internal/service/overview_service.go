package service

import (
	"context"

	"investment-assistant/internal/dto"
	"investment-assistant/internal/model"
	"investment-assistant/internal/repository"
	"investment-assistant/pkg/logger"
)

type OverviewService interface {
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
}

type overviewService struct {
	log           *logger.Logger
	trendRepo     repository.InvestmentTrendRepository
	tradeIdeaRepo repository.TradeIdeaRepository
	tradeRepo     repository.TradeRepository
}

func NewOverviewService(log *logger.Logger, trendRepo repository.InvestmentTrendRepository, tradeIdeaRepo repository.TradeIdeaRepository, tradeRepo repository.TradeRepository) OverviewService {
	return &overviewService{
		log:           log,
		trendRepo:     trendRepo,
		tradeIdeaRepo: tradeIdeaRepo,
		tradeRepo:     tradeRepo,
	}
}

// Overview is the dashboard roll-up: derived statistics plus the freshest
// slice of each record type.
func (s *overviewService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	stats, err := s.tradeRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	trends, err := s.trendRepo.List(ctx, 4)
	if err != nil {
		return nil, err
	}

	active := model.TradeIdeaStatusActive
	ideas, err := s.tradeIdeaRepo.List(ctx, &active)
	if err != nil {
		return nil, err
	}

	trades, err := s.tradeRepo.List(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &dto.OverviewResponse{
		Statistics:   stats,
		RecentTrends: dto.NewTrendResponses(trends),
		ActiveIdeas:  ideas,
		RecentTrades: dto.NewTradeResponses(trades),
	}, nil
}
