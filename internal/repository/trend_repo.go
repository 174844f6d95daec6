package repository

import (
	"context"
	"errors"

	"investment-assistant/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvestmentTrendRepository interface {
	// Upsert writes the trend for a week. An existing row for the same
	// week_start_date keeps its id and created_at; only the content and
	// updated_at change.
	Upsert(ctx context.Context, weekStartDate datatypes.Date, content string) (uint, error)
	List(ctx context.Context, limit int) ([]model.InvestmentTrend, error)
	GetByDate(ctx context.Context, weekStartDate datatypes.Date) (*model.InvestmentTrend, error)
}

type investmentTrendRepository struct {
	db *gorm.DB
}

func NewInvestmentTrendRepository(db *gorm.DB) InvestmentTrendRepository {
	return &investmentTrendRepository{db: db}
}

func (r *investmentTrendRepository) Upsert(ctx context.Context, weekStartDate datatypes.Date, content string) (uint, error) {
	var existing model.InvestmentTrend
	err := r.db.WithContext(ctx).Where("week_start_date = ?", weekStartDate).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		trend := model.InvestmentTrend{
			WeekStartDate: weekStartDate,
			TrendContent:  content,
		}
		if err := r.db.WithContext(ctx).Create(&trend).Error; err != nil {
			return 0, err
		}
		return trend.ID, nil
	}

	err = r.db.WithContext(ctx).
		Model(&model.InvestmentTrend{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{"trend_content": content}).Error
	if err != nil {
		return 0, err
	}
	return existing.ID, nil
}

func (r *investmentTrendRepository) List(ctx context.Context, limit int) ([]model.InvestmentTrend, error) {
	var trends []model.InvestmentTrend
	err := r.db.WithContext(ctx).
		Order("week_start_date DESC").
		Limit(limit).
		Find(&trends).Error
	if err != nil {
		return nil, err
	}
	return trends, nil
}

func (r *investmentTrendRepository) GetByDate(ctx context.Context, weekStartDate datatypes.Date) (*model.InvestmentTrend, error) {
	var trend model.InvestmentTrend
	err := r.db.WithContext(ctx).Where("week_start_date = ?", weekStartDate).First(&trend).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trend, nil
}
