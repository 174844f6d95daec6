package repository

import (
	"fmt"

	"investment-assistant/internal/model"
	"investment-assistant/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// migrationStep is one named, idempotent schema change. Steps run in order
// on every startup; each one re-checks its own precondition instead of
// consulting a version history.
type migrationStep struct {
	Name string
	Run  func(db *gorm.DB) (applied bool, err error)
}

func migrationSteps() []migrationStep {
	return []migrationStep{
		{
			Name: "create-core-tables",
			Run: func(db *gorm.DB) (bool, error) {
				entities := []interface{}{
					&model.InvestmentTrend{},
					&model.GptTrend{},
					&model.GptIdea{},
					&model.TradeIdea{},
					&model.Trade{},
					&model.Prompt{},
				}
				missing := false
				for _, entity := range entities {
					if !db.Migrator().HasTable(entity) {
						missing = true
						break
					}
				}
				if err := db.AutoMigrate(entities...); err != nil {
					return false, err
				}
				return missing, nil
			},
		},
		// Data files written before the one-to-one pairing lack the
		// idea_content column on gpt_trends.
		{
			Name: "gpt-trends-idea-content",
			Run:  ensureColumn(&model.GptTrend{}, "idea_content", "IdeaContent"),
		},
		// Same treatment for the price snapshot added to trade ideas.
		{
			Name: "trade-ideas-price-at-creation",
			Run:  ensureColumn(&model.TradeIdea{}, "price_at_creation", "PriceAtCreation"),
		},
	}
}

func ensureColumn(entity interface{}, column, field string) func(db *gorm.DB) (bool, error) {
	return func(db *gorm.DB) (bool, error) {
		if db.Migrator().HasColumn(entity, column) {
			return false, nil
		}
		if err := db.Migrator().AddColumn(entity, field); err != nil {
			return false, err
		}
		return true, nil
	}
}

// Migrate applies the ordered step list. Safe to run on every start.
func Migrate(db *gorm.DB, log *logger.Logger) error {
	for _, step := range migrationSteps() {
		applied, err := step.Run(db)
		if err != nil {
			return fmt.Errorf("migration step %s: %w", step.Name, err)
		}
		if applied {
			log.Info("Applied migration step", zap.String("step", step.Name))
		}
	}
	return nil
}
