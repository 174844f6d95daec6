package repository

import (
	"path/filepath"
	"testing"
	"time"

	"investment-assistant/config"
	"investment-assistant/pkg/logger"
	"investment-assistant/pkg/sqlite"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
	t.Helper()

	log, err := logger.New("error", "console")
	require.NoError(t, err)

	db, err := sqlite.NewDB(config.Database{
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "Silent",
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db.DB, log
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, log := newTestDB(t)
	cfg := &config.Config{
		MarketData: config.MarketData{
			BaseURL:             "http://127.0.0.1:0",
			Timeout:             time.Second,
			MaxRequestPerMinute: 600,
		},
	}

	repo, err := NewRepository(cfg, db, log)
	require.NoError(t, err)
	return repo
}
