package repository

import (
	"context"

	"investment-assistant/internal/model"

	"gorm.io/gorm"
)

type TradeRepository interface {
	// Create appends a trade. There is no update or delete: executed
	// transactions are immutable once written.
	Create(ctx context.Context, trade *model.Trade) error
	List(ctx context.Context, limit int) ([]model.Trade, error)
	ListBySymbol(ctx context.Context, symbol string) ([]model.Trade, error)
	Statistics(ctx context.Context) (*model.TradeStatistics, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Create(ctx context.Context, trade *model.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

func (r *tradeRepository) List(ctx context.Context, limit int) ([]model.Trade, error) {
	var trades []model.Trade
	err := r.db.WithContext(ctx).
		Order("trade_date DESC, created_at DESC").
		Limit(limit).
		Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

func (r *tradeRepository) ListBySymbol(ctx context.Context, symbol string) ([]model.Trade, error) {
	var trades []model.Trade
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("trade_date DESC").
		Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

// Statistics runs the four aggregates separately, mirroring the stored
// layout: count, overall sum, and per-type sums, each zero on no rows.
func (r *tradeRepository) Statistics(ctx context.Context) (*model.TradeStatistics, error) {
	var stats model.TradeStatistics

	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Trade{}).Count(&stats.TotalTrades).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Trade{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalAmount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Trade{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("trade_type = ?", model.TradeTypeBuy).
		Scan(&stats.BuyAmount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Trade{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("trade_type = ?", model.TradeTypeSell).
		Scan(&stats.SellAmount).Error; err != nil {
		return nil, err
	}

	stats.NetAmount = stats.BuyAmount - stats.SellAmount
	return &stats, nil
}
