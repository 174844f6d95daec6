package service

import (
	"context"
	"strings"

	"investment-assistant/internal/dto"
	"investment-assistant/internal/model"
	"investment-assistant/internal/repository"
	"investment-assistant/pkg/logger"
	"investment-assistant/pkg/utils"
)

const defaultTradeListLimit = 100

type TradeService interface {
	Record(ctx context.Context, req dto.RecordTradeRequest) (uint, error)
	List(ctx context.Context, limit int) ([]dto.TradeResponse, error)
	ListBySymbol(ctx context.Context, symbol string) ([]dto.TradeResponse, error)
	Statistics(ctx context.Context) (*model.TradeStatistics, error)
}

type tradeService struct {
	log       *logger.Logger
	tradeRepo repository.TradeRepository
}

func NewTradeService(log *logger.Logger, tradeRepo repository.TradeRepository) TradeService {
	return &tradeService{log: log, tradeRepo: tradeRepo}
}

func (s *tradeService) Record(ctx context.Context, req dto.RecordTradeRequest) (uint, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return 0, invalidf("symbol is required")
	}
	tradeType := model.TradeType(req.TradeType)
	if !tradeType.Valid() {
		return 0, invalidf("trade_type must be buy or sell")
	}
	if req.Quantity <= 0 {
		return 0, invalidf("quantity must be positive")
	}
	if req.Price <= 0 {
		return 0, invalidf("price must be positive")
	}

	// Amount stays caller-computed and trusted; it is only derived here
	// when the caller left it out entirely.
	amount := req.Amount
	if amount == 0 {
		amount = req.Quantity * req.Price
	}

	tradeDate := utils.Today()
	if req.TradeDate != "" {
		var err error
		tradeDate, err = utils.ParseDate(req.TradeDate)
		if err != nil {
			return 0, invalidf("trade_date must be YYYY-MM-DD: %v", err)
		}
	}

	trade := model.Trade{
		Symbol:    symbol,
		TradeType: tradeType,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Amount:    amount,
		Reasoning: req.Reasoning,
		TradeDate: tradeDate,
	}
	if err := s.tradeRepo.Create(ctx, &trade); err != nil {
		return 0, err
	}
	return trade.ID, nil
}

func (s *tradeService) List(ctx context.Context, limit int) ([]dto.TradeResponse, error) {
	if limit <= 0 {
		limit = defaultTradeListLimit
	}
	trades, err := s.tradeRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewTradeResponses(trades), nil
}

func (s *tradeService) ListBySymbol(ctx context.Context, symbol string) ([]dto.TradeResponse, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, invalidf("symbol is required")
	}
	trades, err := s.tradeRepo.ListBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return dto.NewTradeResponses(trades), nil
}

func (s *tradeService) Statistics(ctx context.Context) (*model.TradeStatistics, error) {
	return s.tradeRepo.Statistics(ctx)
}
