package cmd

import (
	"context"

	"investment-assistant/config"
	"investment-assistant/pkg/logger"
	"investment-assistant/pkg/sqlite"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AppDependency struct {
	db        *sqlite.DB
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
}

// NewAppDependency builds the process-wide dependencies once, with an
// explicit lifecycle: the store opens here and closes in Close.
func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.NewDB(cfg.DB, log)
	if err != nil {
		log.Error("Failed to open database", zap.Error(err))
		return nil, err
	}

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		db:        db,
		echo:      echo.New(),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
