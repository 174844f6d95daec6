package repository

import (
	"context"

	"investment-assistant/internal/model"

	"gorm.io/gorm"
)

type TradeIdeaRepository interface {
	Create(ctx context.Context, idea *model.TradeIdea) error
	// List returns ideas newest-first, optionally restricted to one status.
	List(ctx context.Context, status *model.TradeIdeaStatus) ([]model.TradeIdea, error)
	ListMissingCreationPrice(ctx context.Context) ([]model.TradeIdea, error)
	UpdateStatus(ctx context.Context, id uint, status model.TradeIdeaStatus) error
	UpdatePriceAtCreation(ctx context.Context, id uint, price float64) error
	Delete(ctx context.Context, id uint) error
}

type tradeIdeaRepository struct {
	db *gorm.DB
}

func NewTradeIdeaRepository(db *gorm.DB) TradeIdeaRepository {
	return &tradeIdeaRepository{db: db}
}

func (r *tradeIdeaRepository) Create(ctx context.Context, idea *model.TradeIdea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

func (r *tradeIdeaRepository) List(ctx context.Context, status *model.TradeIdeaStatus) ([]model.TradeIdea, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var ideas []model.TradeIdea
	if err := query.Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *tradeIdeaRepository) ListMissingCreationPrice(ctx context.Context) ([]model.TradeIdea, error) {
	var ideas []model.TradeIdea
	err := r.db.WithContext(ctx).
		Where("symbol <> '' AND price_at_creation IS NULL").
		Order("created_at ASC").
		Find(&ideas).Error
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *tradeIdeaRepository) UpdateStatus(ctx context.Context, id uint, status model.TradeIdeaStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.TradeIdea{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}

// UpdatePriceAtCreation deliberately skips the updated_at bump: the backfill
// is bookkeeping, not an edit of the idea.
func (r *tradeIdeaRepository) UpdatePriceAtCreation(ctx context.Context, id uint, price float64) error {
	return r.db.WithContext(ctx).
		Model(&model.TradeIdea{}).
		Where("id = ?", id).
		UpdateColumn("price_at_creation", price).Error
}

func (r *tradeIdeaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TradeIdea{}).Error
}
