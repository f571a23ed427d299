package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL          string
	Port                 string
	IsProduction         bool
	EnableDBCheck        bool
	ChartOfAccountsFile  string   // YAML chart of accounts seeded at startup; empty disables seeding
	RateLimit            string   // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins   []string // empty allows all origins
	DefaultPageSize      int
	MaxPageSize          int
	CurrencyExponent     int32 // minor units per major unit as a power of ten: 0 for yen, 2 for cents
	DefaultCurrencyLabel string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("CHART_OF_ACCOUNTS_FILE", "config/chart_of_accounts.yaml")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("DEFAULT_PAGE_SIZE", 20)
	viper.SetDefault("MAX_PAGE_SIZE", 100)
	viper.SetDefault("CURRENCY_EXPONENT", 0)
	viper.SetDefault("CURRENCY_LABEL", "JPY")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.ChartOfAccountsFile = viper.GetString("CHART_OF_ACCOUNTS_FILE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.DefaultCurrencyLabel = viper.GetString("CURRENCY_LABEL")

	cfg.MaxPageSize = viper.GetInt("MAX_PAGE_SIZE")
	if cfg.MaxPageSize <= 0 {
		return nil, fmt.Errorf("MAX_PAGE_SIZE must be positive, got %d", cfg.MaxPageSize)
	}
	cfg.DefaultPageSize = viper.GetInt("DEFAULT_PAGE_SIZE")
	if cfg.DefaultPageSize <= 0 || cfg.DefaultPageSize > cfg.MaxPageSize {
		log.Printf("Warning: invalid DEFAULT_PAGE_SIZE (%d). Defaulting to 20.\n", cfg.DefaultPageSize)
		cfg.DefaultPageSize = min(20, cfg.MaxPageSize)
	}

	exp := viper.GetInt("CURRENCY_EXPONENT")
	if exp < 0 || exp > 8 {
		return nil, fmt.Errorf("CURRENCY_EXPONENT must be between 0 and 8, got %d", exp)
	}
	cfg.CurrencyExponent = int32(exp)

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
