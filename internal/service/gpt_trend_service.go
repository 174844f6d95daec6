package service

import (
	"context"
	"strings"

	"investment-assistant/internal/model"
	"investment-assistant/internal/repository"
	"investment-assistant/pkg/logger"
	"investment-assistant/pkg/utils"
)

const defaultGptTrendListLimit = 100

type GptTrendService interface {
	Create(ctx context.Context, title, content string, ideaContent *string) (uint, error)
	List(ctx context.Context, limit int) ([]model.GptTrend, error)
	GetByID(ctx context.Context, id uint) (*model.GptTrend, error)
	Update(ctx context.Context, id uint, title, content string, ideaContent *string) error
	UpdateIdeaContent(ctx context.Context, id uint, ideaContent string) error
	Delete(ctx context.Context, id uint) error

	AddLegacyIdea(ctx context.Context, trendID uint, content string) (uint, error)
	ListLegacyIdeas(ctx context.Context, trendID uint) ([]model.GptIdea, error)
	UpdateLegacyIdea(ctx context.Context, id uint, content string) error
	DeleteLegacyIdea(ctx context.Context, id uint) error
}

type gptTrendService struct {
	log          *logger.Logger
	gptTrendRepo repository.GptTrendRepository
	uow          repository.UnitOfWork
}

func NewGptTrendService(log *logger.Logger, gptTrendRepo repository.GptTrendRepository, uow repository.UnitOfWork) GptTrendService {
	return &gptTrendService{log: log, gptTrendRepo: gptTrendRepo, uow: uow}
}

func (s *gptTrendService) Create(ctx context.Context, title, content string, ideaContent *string) (uint, error) {
	if strings.TrimSpace(title) == "" {
		return 0, invalidf("title is required")
	}
	if strings.TrimSpace(content) == "" {
		return 0, invalidf("trend_content is required")
	}

	trend := model.GptTrend{
		Title:        title,
		TrendContent: content,
		IdeaContent:  ideaContent,
	}
	if err := s.gptTrendRepo.Create(ctx, &trend); err != nil {
		return 0, err
	}
	return trend.ID, nil
}

func (s *gptTrendService) List(ctx context.Context, limit int) ([]model.GptTrend, error) {
	if limit <= 0 {
		limit = defaultGptTrendListLimit
	}
	return s.gptTrendRepo.List(ctx, limit)
}

func (s *gptTrendService) GetByID(ctx context.Context, id uint) (*model.GptTrend, error) {
	trend, err := s.gptTrendRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trend == nil {
		return nil, notFoundf("gpt trend %d", id)
	}
	return trend, nil
}

func (s *gptTrendService) Update(ctx context.Context, id uint, title, content string, ideaContent *string) error {
	if strings.TrimSpace(title) == "" {
		return invalidf("title is required")
	}
	if strings.TrimSpace(content) == "" {
		return invalidf("trend_content is required")
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.gptTrendRepo.Update(ctx, id, title, content, ideaContent)
}

func (s *gptTrendService) UpdateIdeaContent(ctx context.Context, id uint, ideaContent string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.gptTrendRepo.UpdateIdeaContent(ctx, id, ideaContent)
}

// Delete removes the trend and any legacy child rows referencing it, in
// one short transaction so a half-deleted pair never survives.
func (s *gptTrendService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.uow.Run(func(opts ...utils.DBOption) error {
		if err := s.gptTrendRepo.DeleteLegacyIdeasByTrend(ctx, id, opts...); err != nil {
			return err
		}
		return s.gptTrendRepo.Delete(ctx, id, opts...)
	})
}

func (s *gptTrendService) AddLegacyIdea(ctx context.Context, trendID uint, content string) (uint, error) {
	if strings.TrimSpace(content) == "" {
		return 0, invalidf("idea_content is required")
	}
	if _, err := s.GetByID(ctx, trendID); err != nil {
		return 0, err
	}

	idea := model.GptIdea{TrendID: trendID, IdeaContent: content}
	if err := s.gptTrendRepo.AddLegacyIdea(ctx, &idea); err != nil {
		return 0, err
	}
	return idea.ID, nil
}

func (s *gptTrendService) ListLegacyIdeas(ctx context.Context, trendID uint) ([]model.GptIdea, error) {
	return s.gptTrendRepo.ListLegacyIdeasByTrend(ctx, trendID)
}

func (s *gptTrendService) UpdateLegacyIdea(ctx context.Context, id uint, content string) error {
	if strings.TrimSpace(content) == "" {
		return invalidf("idea_content is required")
	}
	idea, err := s.gptTrendRepo.GetLegacyIdeaByID(ctx, id)
	if err != nil {
		return err
	}
	if idea == nil {
		return notFoundf("gpt idea %d", id)
	}
	return s.gptTrendRepo.UpdateLegacyIdea(ctx, id, content)
}

func (s *gptTrendService) DeleteLegacyIdea(ctx context.Context, id uint) error {
	return s.gptTrendRepo.DeleteLegacyIdea(ctx, id)
}
