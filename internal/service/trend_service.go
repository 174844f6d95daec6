package service

import (
	"context"
	"strings"

	"investment-assistant/internal/dto"
	"investment-assistant/internal/repository"
	"investment-assistant/pkg/logger"
	"investment-assistant/pkg/utils"
)

const defaultTrendListLimit = 52

type TrendService interface {
	Upsert(ctx context.Context, weekStartDate, content string) (uint, error)
	List(ctx context.Context, limit int) ([]dto.TrendResponse, error)
	GetByDate(ctx context.Context, weekStartDate string) (*dto.TrendResponse, error)
}

type trendService struct {
	log       *logger.Logger
	trendRepo repository.InvestmentTrendRepository
}

func NewTrendService(log *logger.Logger, trendRepo repository.InvestmentTrendRepository) TrendService {
	return &trendService{log: log, trendRepo: trendRepo}
}

func (s *trendService) Upsert(ctx context.Context, weekStartDate, content string) (uint, error) {
	date, err := utils.ParseDate(weekStartDate)
	if err != nil {
		return 0, invalidf("week_start_date must be YYYY-MM-DD: %v", err)
	}
	if strings.TrimSpace(content) == "" {
		return 0, invalidf("trend_content is required")
	}
	return s.trendRepo.Upsert(ctx, date, content)
}

func (s *trendService) List(ctx context.Context, limit int) ([]dto.TrendResponse, error) {
	if limit <= 0 {
		limit = defaultTrendListLimit
	}
	trends, err := s.trendRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewTrendResponses(trends), nil
}

func (s *trendService) GetByDate(ctx context.Context, weekStartDate string) (*dto.TrendResponse, error) {
	date, err := utils.ParseDate(weekStartDate)
	if err != nil {
		return nil, invalidf("week_start_date must be YYYY-MM-DD: %v", err)
	}
	trend, err := s.trendRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if trend == nil {
		return nil, notFoundf("no trend for week %s", weekStartDate)
	}
	resp := dto.NewTrendResponse(*trend)
	return &resp, nil
}
