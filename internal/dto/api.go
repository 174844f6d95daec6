package dto

import (
	"time"

	"investment-assistant/internal/model"
	"investment-assistant/pkg/utils"
)

type UpsertTrendRequest struct {
	WeekStartDate string `json:"week_start_date" validate:"required,datetime=2006-01-02"`
	TrendContent  string `json:"trend_content" validate:"required"`
}

type CreateGptTrendRequest struct {
	Title        string  `json:"title" validate:"required"`
	TrendContent string  `json:"trend_content" validate:"required"`
	IdeaContent  *string `json:"idea_content"`
}

// UpdateGptTrendRequest carries an optional idea_content: a missing field
// leaves the stored idea untouched, an explicit value (including "")
// overwrites it.
type UpdateGptTrendRequest struct {
	Title        string  `json:"title" validate:"required"`
	TrendContent string  `json:"trend_content" validate:"required"`
	IdeaContent  *string `json:"idea_content"`
}

type UpdateGptIdeaRequest struct {
	IdeaContent string `json:"idea_content" validate:"required"`
}

type CreateLegacyIdeaRequest struct {
	IdeaContent string `json:"idea_content" validate:"required"`
}

type CreateTradeIdeaRequest struct {
	Symbol          string   `json:"symbol"`
	IdeaDescription string   `json:"idea_description" validate:"required"`
	EntryPrice      *float64 `json:"entry_price" validate:"omitempty,gte=0"`
	TargetPrice     *float64 `json:"target_price" validate:"omitempty,gte=0"`
	StopLoss        *float64 `json:"stop_loss" validate:"omitempty,gte=0"`
	Reasoning       *string  `json:"reasoning"`
	PriceAtCreation *float64 `json:"price_at_creation" validate:"omitempty,gte=0"`
}

type UpdateTradeIdeaStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed cancelled"`
}

type RecordTradeRequest struct {
	Symbol    string  `json:"symbol" validate:"required"`
	TradeType string  `json:"trade_type" validate:"required,oneof=buy sell"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	// Amount is trusted as given; when omitted it is computed as
	// quantity * price.
	Amount    float64 `json:"amount" validate:"omitempty,gte=0"`
	Reasoning *string `json:"reasoning"`
	TradeDate string  `json:"trade_date" validate:"omitempty,datetime=2006-01-02"`
}

type SavePromptRequest struct {
	Name          string `json:"name" validate:"required"`
	PromptContent string `json:"prompt_content" validate:"required"`
	Category      string `json:"category"`
}

type TrendResponse struct {
	ID            uint      `json:"id"`
	WeekStartDate string    `json:"week_start_date"`
	TrendContent  string    `json:"trend_content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewTrendResponse(m model.InvestmentTrend) TrendResponse {
	return TrendResponse{
		ID:            m.ID,
		WeekStartDate: utils.FormatDate(m.WeekStartDate),
		TrendContent:  m.TrendContent,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func NewTrendResponses(ms []model.InvestmentTrend) []TrendResponse {
	out := make([]TrendResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewTrendResponse(m))
	}
	return out
}

type TradeResponse struct {
	ID        uint            `json:"id"`
	Symbol    string          `json:"symbol"`
	TradeType model.TradeType `json:"trade_type"`
	Quantity  float64         `json:"quantity"`
	Price     float64         `json:"price"`
	Amount    float64         `json:"amount"`
	Reasoning *string         `json:"reasoning"`
	TradeDate string          `json:"trade_date"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewTradeResponse(m model.Trade) TradeResponse {
	return TradeResponse{
		ID:        m.ID,
		Symbol:    m.Symbol,
		TradeType: m.TradeType,
		Quantity:  m.Quantity,
		Price:     m.Price,
		Amount:    m.Amount,
		Reasoning: m.Reasoning,
		TradeDate: utils.FormatDate(m.TradeDate),
		CreatedAt: m.CreatedAt,
	}
}

func NewTradeResponses(ms []model.Trade) []TradeResponse {
	out := make([]TradeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewTradeResponse(m))
	}
	return out
}

type BackfillResult struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type OverviewResponse struct {
	Statistics   *model.TradeStatistics `json:"statistics"`
	RecentTrends []TrendResponse        `json:"recent_trends"`
	ActiveIdeas  []model.TradeIdea      `json:"active_ideas"`
	RecentTrades []TradeResponse        `json:"recent_trades"`
}
