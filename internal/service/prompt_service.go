package service

import (
	"context"
	"strings"

	"investment-assistant/internal/model"
	"investment-assistant/internal/repository"
	"investment-assistant/pkg/logger"
)

const defaultPromptCategory = "general"

type PromptService interface {
	Create(ctx context.Context, name, content, category string) (uint, error)
	List(ctx context.Context, category string) ([]model.Prompt, error)
	GetByID(ctx context.Context, id uint) (*model.Prompt, error)
	Update(ctx context.Context, id uint, name, content, category string) error
	Delete(ctx context.Context, id uint) error
	Categories(ctx context.Context) ([]string, error)
}

type promptService struct {
	log        *logger.Logger
	promptRepo repository.PromptRepository
}

func NewPromptService(log *logger.Logger, promptRepo repository.PromptRepository) PromptService {
	return &promptService{log: log, promptRepo: promptRepo}
}

func (s *promptService) Create(ctx context.Context, name, content, category string) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, invalidf("name is required")
	}
	if strings.TrimSpace(content) == "" {
		return 0, invalidf("prompt_content is required")
	}
	if category == "" {
		category = defaultPromptCategory
	}

	prompt := model.Prompt{Name: name, PromptContent: content, Category: category}
	if err := s.promptRepo.Create(ctx, &prompt); err != nil {
		return 0, err
	}
	return prompt.ID, nil
}

func (s *promptService) List(ctx context.Context, category string) ([]model.Prompt, error) {
	var filter *string
	if category != "" {
		filter = &category
	}
	return s.promptRepo.List(ctx, filter)
}

func (s *promptService) GetByID(ctx context.Context, id uint) (*model.Prompt, error) {
	prompt, err := s.promptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, notFoundf("prompt %d", id)
	}
	return prompt, nil
}

func (s *promptService) Update(ctx context.Context, id uint, name, content, category string) error {
	if strings.TrimSpace(name) == "" {
		return invalidf("name is required")
	}
	if strings.TrimSpace(content) == "" {
		return invalidf("prompt_content is required")
	}
	if category == "" {
		category = defaultPromptCategory
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.promptRepo.Update(ctx, id, name, content, category)
}

func (s *promptService) Delete(ctx context.Context, id uint) error {
	return s.promptRepo.Delete(ctx, id)
}

func (s *promptService) Categories(ctx context.Context) ([]string, error) {
	return s.promptRepo.Categories(ctx)
}
