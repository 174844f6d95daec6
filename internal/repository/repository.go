package repository

import (
	"investment-assistant/config"
	"investment-assistant/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	InvestmentTrendRepo InvestmentTrendRepository
	GptTrendRepo        GptTrendRepository
	TradeIdeaRepo       TradeIdeaRepository
	TradeRepo           TradeRepository
	PromptRepo          PromptRepository
	MarketDataRepo      MarketDataRepository
	UnitOfWork          UnitOfWork
}

// NewRepository ensures the schema is current, then wires every
// repository against the shared store.
func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	if err := Migrate(db, log); err != nil {
		return nil, err
	}

	return &Repository{
		InvestmentTrendRepo: NewInvestmentTrendRepository(db),
		GptTrendRepo:        NewGptTrendRepository(db),
		TradeIdeaRepo:       NewTradeIdeaRepository(db),
		TradeRepo:           NewTradeRepository(db),
		PromptRepo:          NewPromptRepository(db),
		MarketDataRepo:      NewMarketDataRepository(cfg, log),
		UnitOfWork:          NewUnitOfWork(db),
	}, nil
}
