package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	DMarket  DMarket  `mapstructure:"dmarket"`
	Waxpeer  Waxpeer  `mapstructure:"waxpeer"`
	Trading  Trading  `mapstructure:"trading"`
	Logger   Logger   `mapstructure:"logger"`
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
}

// DMarket holds the configuration for the DMarket API.
type DMarket struct {
	PublicKey      string  `mapstructure:"publicKey"`
	SecretKey      string  `mapstructure:"secretKey"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Waxpeer holds the configuration for the Waxpeer price API.
type Waxpeer struct {
	APIKey         string  `mapstructure:"apiKey"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Server holds the configuration for the web server.
type Server struct {
	Port int `mapstructure:"port"`
}

// Database holds the configuration for the database.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Trading holds the configuration for the scanning and trading logic.
type Trading struct {
	Game         string `mapstructure:"game"`
	Preset       string `mapstructure:"preset"`
	PageSize     int    `mapstructure:"page_size"`
	TickInterval int    `mapstructure:"tick_interval"`
	DryRun       bool   `mapstructure:"dry_run"`
	AutoBuy      bool   `mapstructure:"auto_buy"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("dmarket.rate_limit", 10) // requests per second
	viper.SetDefault("dmarket.rate_limit_burst", 5)
	viper.SetDefault("waxpeer.rate_limit", 2)
	viper.SetDefault("waxpeer.rate_limit_burst", 2)
	viper.SetDefault("trading.game", "csgo")
	viper.SetDefault("trading.preset", "balanced")
	viper.SetDefault("trading.page_size", 100)
	viper.SetDefault("trading.tick_interval", 60)
	viper.SetDefault("trading.dry_run", true)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
