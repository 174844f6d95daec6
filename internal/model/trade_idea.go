package model

import "time"

type TradeIdeaStatus string

const (
	TradeIdeaStatusActive    TradeIdeaStatus = "active"
	TradeIdeaStatusCompleted TradeIdeaStatus = "completed"
	TradeIdeaStatusCancelled TradeIdeaStatus = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s TradeIdeaStatus) Valid() bool {
	switch s {
	case TradeIdeaStatusActive, TradeIdeaStatusCompleted, TradeIdeaStatusCancelled:
		return true
	}
	return false
}

// TradeIdea is a candidate trade thesis. Price levels are pointers so that
// "absent" and "explicitly zero" stay distinct. PriceAtCreation is a
// point-in-time market snapshot backfilled after creation, best effort.
type TradeIdea struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Symbol          string          `json:"symbol"`
	IdeaDescription string          `gorm:"not null" json:"idea_description"`
	EntryPrice      *float64        `json:"entry_price"`
	TargetPrice     *float64        `json:"target_price"`
	StopLoss        *float64        `json:"stop_loss"`
	Reasoning       *string         `json:"reasoning"`
	Status          TradeIdeaStatus `gorm:"not null;default:active" json:"status"`
	PriceAtCreation *float64        `json:"price_at_creation"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TradeIdea) TableName() string {
	return "trade_ideas"
}
