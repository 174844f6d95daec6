package model

import "time"

// Prompt is a reusable text template for external AI-assistant use.
type Prompt struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	PromptContent string    `gorm:"not null" json:"prompt_content"`
	Category      string    `gorm:"not null;default:general" json:"category"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Prompt) TableName() string {
	return "prompts"
}
