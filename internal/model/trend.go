package model

import (
	"time"

	"gorm.io/datatypes"
)

// InvestmentTrend is a weekly market-outlook note. At most one row exists
// per week_start_date; a second write for the same week replaces the
// content in place.
type InvestmentTrend struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	WeekStartDate datatypes.Date `gorm:"not null;uniqueIndex" json:"-"`
	TrendContent  string         `gorm:"not null" json:"trend_content"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InvestmentTrend) TableName() string {
	return "investment_trends"
}
