package service

import (
	"context"
	"strings"
	"time"

	"investment-assistant/config"
	"investment-assistant/internal/dto"
	"investment-assistant/internal/model"
	"investment-assistant/internal/repository"
	"investment-assistant/pkg/logger"

	"go.uber.org/zap"
)

type TradeIdeaService interface {
	Create(ctx context.Context, req dto.CreateTradeIdeaRequest) (uint, error)
	List(ctx context.Context, status string) ([]model.TradeIdea, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	// BackfillCreationPrices fills price_at_creation for ideas that have a
	// symbol but no snapshot yet. Explicitly invoked, never a side effect
	// of a read. Per-idea lookup failures are logged and skipped.
	BackfillCreationPrices(ctx context.Context) (*dto.BackfillResult, error)
}

type tradeIdeaService struct {
	cfg            *config.Config
	log            *logger.Logger
	tradeIdeaRepo  repository.TradeIdeaRepository
	marketDataRepo repository.MarketDataRepository
}

func NewTradeIdeaService(cfg *config.Config, log *logger.Logger, tradeIdeaRepo repository.TradeIdeaRepository, marketDataRepo repository.MarketDataRepository) TradeIdeaService {
	return &tradeIdeaService{
		cfg:            cfg,
		log:            log,
		tradeIdeaRepo:  tradeIdeaRepo,
		marketDataRepo: marketDataRepo,
	}
}

func (s *tradeIdeaService) Create(ctx context.Context, req dto.CreateTradeIdeaRequest) (uint, error) {
	if strings.TrimSpace(req.IdeaDescription) == "" {
		return 0, invalidf("idea_description is required")
	}
	for name, price := range map[string]*float64{
		"entry_price":       req.EntryPrice,
		"target_price":      req.TargetPrice,
		"stop_loss":         req.StopLoss,
		"price_at_creation": req.PriceAtCreation,
	} {
		if price != nil && *price < 0 {
			return 0, invalidf("%s must not be negative", name)
		}
	}

	idea := model.TradeIdea{
		Symbol:          strings.ToUpper(strings.TrimSpace(req.Symbol)),
		IdeaDescription: req.IdeaDescription,
		EntryPrice:      req.EntryPrice,
		TargetPrice:     req.TargetPrice,
		StopLoss:        req.StopLoss,
		Reasoning:       req.Reasoning,
		Status:          model.TradeIdeaStatusActive,
		PriceAtCreation: req.PriceAtCreation,
	}
	if err := s.tradeIdeaRepo.Create(ctx, &idea); err != nil {
		return 0, err
	}
	return idea.ID, nil
}

func (s *tradeIdeaService) List(ctx context.Context, status string) ([]model.TradeIdea, error) {
	var filter *model.TradeIdeaStatus
	if status != "" {
		st := model.TradeIdeaStatus(status)
		if !st.Valid() {
			return nil, invalidf("unknown status %q", status)
		}
		filter = &st
	}
	return s.tradeIdeaRepo.List(ctx, filter)
}

func (s *tradeIdeaService) UpdateStatus(ctx context.Context, id uint, status string) error {
	st := model.TradeIdeaStatus(status)
	if !st.Valid() {
		return invalidf("unknown status %q", status)
	}
	return s.tradeIdeaRepo.UpdateStatus(ctx, id, st)
}

func (s *tradeIdeaService) Delete(ctx context.Context, id uint) error {
	return s.tradeIdeaRepo.Delete(ctx, id)
}

func (s *tradeIdeaService) BackfillCreationPrices(ctx context.Context) (*dto.BackfillResult, error) {
	ideas, err := s.tradeIdeaRepo.ListMissingCreationPrice(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.BackfillResult{Scanned: len(ideas)}
	for _, idea := range ideas {
		price, ok := s.lookupCreationPrice(ctx, idea)
		if !ok {
			result.Skipped++
			continue
		}
		if err := s.tradeIdeaRepo.UpdatePriceAtCreation(ctx, idea.ID, price); err != nil {
			return result, err
		}
		result.Updated++
	}
	return result, nil
}

// lookupCreationPrice resolves the close of the session on the idea's
// creation date, falling back to the most recent close before it.
func (s *tradeIdeaService) lookupCreationPrice(ctx context.Context, idea model.TradeIdea) (float64, bool) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.MarketData.BackfillTimeout)
	defer cancel()

	history, err := s.marketDataRepo.GetHistory(lookupCtx, idea.Symbol, "1mo")
	if err != nil {
		s.log.WarnContext(ctx, "Skipping price backfill for idea",
			zap.Uint("idea_id", idea.ID),
			zap.String("symbol", idea.Symbol),
			zap.Error(err))
		return 0, false
	}

	createdDay := idea.CreatedAt.Truncate(24 * time.Hour)
	var price float64
	for _, candle := range history.Candles {
		candleDay := time.Unix(candle.Timestamp, 0).UTC().Truncate(24 * time.Hour)
		if candleDay.After(createdDay) {
			break
		}
		price = candle.Close
	}
	if price <= 0 {
		s.log.WarnContext(ctx, "No session close found for idea creation date",
			zap.Uint("idea_id", idea.ID),
			zap.String("symbol", idea.Symbol))
		return 0, false
	}
	return price, true
}
