package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log        Logger     `mapstructure:"logger"`
	DB         Database   `mapstructure:"database"`
	API        API        `mapstructure:"api"`
	MarketData MarketData `mapstructure:"market_data"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	// Path is the location of the embedded SQLite file. Overridable via
	// the DATABASE_PATH environment variable.
	Path     string `mapstructure:"path"`
	LogLevel string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type MarketData struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	BackfillTimeout     time.Duration `mapstructure:"backfill_timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxConcurrentFetch  int           `mapstructure:"max_concurrent_fetch"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("database.path", "investment_data.db")
	viper.SetDefault("database.log_level", "Warn")
	viper.SetDefault("api.port", 8089)
	viper.SetDefault("market_data.base_url", "https://query1.finance.yahoo.com")
	viper.SetDefault("market_data.timeout", 15*time.Second)
	viper.SetDefault("market_data.backfill_timeout", 3*time.Second)
	viper.SetDefault("market_data.max_request_per_minute", 30)
	viper.SetDefault("market_data.max_concurrent_fetch", 4)
}
