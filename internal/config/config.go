package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// CSV import uploads are written here before parsing and removed after
	// each run.
	UploadDir string `mapstructure:"UPLOAD_DIR"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 4000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "inventory.db")
	viper.SetDefault("UPLOAD_DIR", "uploads")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
