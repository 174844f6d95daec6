package model

import (
	"time"

	"gorm.io/datatypes"
)

type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

func (t TradeType) Valid() bool {
	return t == TradeTypeBuy || t == TradeTypeSell
}

// Trade is an executed transaction. Rows are append-only: there is no
// update or delete surface. Amount is caller-computed and stored as given.
type Trade struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Symbol    string         `gorm:"not null;index" json:"symbol"`
	TradeType TradeType      `gorm:"not null" json:"trade_type"`
	Quantity  float64        `gorm:"not null" json:"quantity"`
	Price     float64        `gorm:"not null" json:"price"`
	Amount    float64        `gorm:"not null" json:"amount"`
	Reasoning *string        `json:"reasoning"`
	TradeDate datatypes.Date `gorm:"not null;index" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// TradeStatistics is recomputed from the trades table on every request.
type TradeStatistics struct {
	TotalTrades int64   `json:"total_trades"`
	TotalAmount float64 `json:"total_amount"`
	BuyAmount   float64 `json:"buy_amount"`
	SellAmount  float64 `json:"sell_amount"`
	NetAmount   float64 `json:"net_amount"`
}
