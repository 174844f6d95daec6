package repository

import (
	"context"
	"errors"

	"investment-assistant/internal/model"
	"investment-assistant/pkg/utils"

	"gorm.io/gorm"
)

type GptTrendRepository interface {
	Create(ctx context.Context, trend *model.GptTrend) error
	List(ctx context.Context, limit int) ([]model.GptTrend, error)
	GetByID(ctx context.Context, id uint) (*model.GptTrend, error)
	// Update writes title and content; ideaContent is only written when
	// non-nil, so callers clearing the idea must pass a pointer to "".
	Update(ctx context.Context, id uint, title, content string, ideaContent *string) error
	UpdateIdeaContent(ctx context.Context, id uint, ideaContent string) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error

	// Legacy one-to-many child rows, kept for old data files.
	AddLegacyIdea(ctx context.Context, idea *model.GptIdea) error
	ListLegacyIdeasByTrend(ctx context.Context, trendID uint) ([]model.GptIdea, error)
	GetLegacyIdeaByID(ctx context.Context, id uint) (*model.GptIdea, error)
	UpdateLegacyIdea(ctx context.Context, id uint, content string) error
	DeleteLegacyIdea(ctx context.Context, id uint) error
	DeleteLegacyIdeasByTrend(ctx context.Context, trendID uint, opts ...utils.DBOption) error
}

type gptTrendRepository struct {
	db *gorm.DB
}

func NewGptTrendRepository(db *gorm.DB) GptTrendRepository {
	return &gptTrendRepository{db: db}
}

func (r *gptTrendRepository) Create(ctx context.Context, trend *model.GptTrend) error {
	return r.db.WithContext(ctx).Create(trend).Error
}

func (r *gptTrendRepository) List(ctx context.Context, limit int) ([]model.GptTrend, error) {
	var trends []model.GptTrend
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&trends).Error
	if err != nil {
		return nil, err
	}
	return trends, nil
}

func (r *gptTrendRepository) GetByID(ctx context.Context, id uint) (*model.GptTrend, error) {
	var trend model.GptTrend
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trend).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trend, nil
}

func (r *gptTrendRepository) Update(ctx context.Context, id uint, title, content string, ideaContent *string) error {
	updates := map[string]interface{}{
		"title":         title,
		"trend_content": content,
	}
	if ideaContent != nil {
		updates["idea_content"] = *ideaContent
	}
	return r.db.WithContext(ctx).
		Model(&model.GptTrend{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *gptTrendRepository) UpdateIdeaContent(ctx context.Context, id uint, ideaContent string) error {
	return r.db.WithContext(ctx).
		Model(&model.GptTrend{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"idea_content": ideaContent}).Error
}

func (r *gptTrendRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("id = ?", id).
		Delete(&model.GptTrend{}).Error
}

func (r *gptTrendRepository) AddLegacyIdea(ctx context.Context, idea *model.GptIdea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

func (r *gptTrendRepository) ListLegacyIdeasByTrend(ctx context.Context, trendID uint) ([]model.GptIdea, error) {
	var ideas []model.GptIdea
	err := r.db.WithContext(ctx).
		Where("trend_id = ?", trendID).
		Order("created_at DESC").
		Find(&ideas).Error
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *gptTrendRepository) GetLegacyIdeaByID(ctx context.Context, id uint) (*model.GptIdea, error) {
	var idea model.GptIdea
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&idea).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &idea, nil
}

func (r *gptTrendRepository) UpdateLegacyIdea(ctx context.Context, id uint, content string) error {
	return r.db.WithContext(ctx).
		Model(&model.GptIdea{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"idea_content": content}).Error
}

func (r *gptTrendRepository) DeleteLegacyIdea(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GptIdea{}).Error
}

func (r *gptTrendRepository) DeleteLegacyIdeasByTrend(ctx context.Context, trendID uint, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("trend_id = ?", trendID).
		Delete(&model.GptIdea{}).Error
}
