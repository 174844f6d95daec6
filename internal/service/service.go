package service

import (
	"investment-assistant/config"
	"investment-assistant/internal/repository"
	"investment-assistant/pkg/logger"
)

type Service struct {
	TrendService      TrendService
	GptTrendService   GptTrendService
	TradeIdeaService  TradeIdeaService
	TradeService      TradeService
	PromptService     PromptService
	MarketDataService MarketDataService
	OverviewService   OverviewService
}

func NewService(cfg *config.Config, log *logger.Logger, repo *repository.Repository) *Service {
	return &Service{
		TrendService:      NewTrendService(log, repo.InvestmentTrendRepo),
		GptTrendService:   NewGptTrendService(log, repo.GptTrendRepo, repo.UnitOfWork),
		TradeIdeaService:  NewTradeIdeaService(cfg, log, repo.TradeIdeaRepo, repo.MarketDataRepo),
		TradeService:      NewTradeService(log, repo.TradeRepo),
		PromptService:     NewPromptService(log, repo.PromptRepo),
		MarketDataService: NewMarketDataService(cfg, log, repo.MarketDataRepo),
		OverviewService:   NewOverviewService(log, repo.InvestmentTrendRepo, repo.TradeIdeaRepo, repo.TradeRepo),
	}
}
