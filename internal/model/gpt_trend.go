package model

import "time"

// GptTrend is a free-standing titled outlook note with an optional paired
// idea text. IdeaContent is the authoritative one-to-one pairing; the
// gpt_ideas table below is a superseded layout kept for old data files.
type GptTrend struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	TrendContent string    `gorm:"not null" json:"trend_content"`
	IdeaContent  *string   `json:"idea_content"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GptTrend) TableName() string {
	return "gpt_trends"
}

// GptIdea is the legacy one-to-many child row keyed by trend id. New code
// writes GptTrend.IdeaContent instead; these rows are only read back for
// data files created before the schema change.
type GptIdea struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TrendID     uint      `gorm:"not null;index" json:"trend_id"`
	IdeaContent string    `gorm:"not null" json:"idea_content"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GptIdea) TableName() string {
	return "gpt_ideas"
}
