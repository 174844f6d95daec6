package repository

import (
	"context"
	"errors"

	"investment-assistant/internal/model"

	"gorm.io/gorm"
)

type PromptRepository interface {
	Create(ctx context.Context, prompt *model.Prompt) error
	// List orders by category then name; when filtered to one category,
	// by name alone.
	List(ctx context.Context, category *string) ([]model.Prompt, error)
	GetByID(ctx context.Context, id uint) (*model.Prompt, error)
	Update(ctx context.Context, id uint, name, content, category string) error
	Delete(ctx context.Context, id uint) error
	Categories(ctx context.Context) ([]string, error)
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, prompt *model.Prompt) error {
	return r.db.WithContext(ctx).Create(prompt).Error
}

func (r *promptRepository) List(ctx context.Context, category *string) ([]model.Prompt, error) {
	query := r.db.WithContext(ctx)
	if category != nil {
		query = query.Where("category = ?", *category).Order("name ASC")
	} else {
		query = query.Order("category ASC, name ASC")
	}

	var prompts []model.Prompt
	if err := query.Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *promptRepository) GetByID(ctx context.Context, id uint) (*model.Prompt, error) {
	var prompt model.Prompt
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&prompt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) Update(ctx context.Context, id uint, name, content, category string) error {
	return r.db.WithContext(ctx).
		Model(&model.Prompt{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":           name,
			"prompt_content": content,
			"category":       category,
		}).Error
}

func (r *promptRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Prompt{}).Error
}

func (r *promptRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Prompt{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
