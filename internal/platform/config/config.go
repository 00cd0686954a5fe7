package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	DatabaseURL    string
	EnableDBCheck  bool
	StorageDriver  string
	MigrationsPath string

	JWTSecret          string
	RateLimit          string
	CORSAllowedOrigins []string

	// Market data
	AlphaVantageAPIKey  string
	AlphaVantageBaseURL string
	MarketFetchTimeout  time.Duration
	CryptoSymbols       []string

	// Valuation
	ReferenceCurrency string
	// FXSeedRates are the cold-start USD/<code> rates, keyed by quote currency.
	FXSeedRates map[string]decimal.Decimal

	// Shared rate cache; empty means in-process only.
	RedisURL string

	// Optional cron schedule that keeps the FX cache warm, e.g. "@every 15m".
	FXWarmSchedule   string
	FXWarmCurrencies []string

	// Trade confirmation emails
	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string
	NotifyQueueSize  int
	NotifyWorkers    int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ALPHAVANTAGE_API_KEY", "demo")
	v.SetDefault("ALPHAVANTAGE_BASE_URL", "https://www.alphavantage.co/query")
	v.SetDefault("MARKET_FETCH_TIMEOUT", "5s")
	v.SetDefault("CRYPTO_SYMBOLS", "BTC,ETH")
	v.SetDefault("REFERENCE_CURRENCY", "ZAR")
	v.SetDefault("FX_SEED_RATES", "ZAR=18.50,EUR=0.92,GBP=0.79")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("FX_WARM_SCHEDULE", "")
	v.SetDefault("FX_WARM_CURRENCIES", "")
	v.SetDefault("BREVO_API_KEY", "")
	v.SetDefault("BREVO_SENDER_EMAIL", "no-reply@assetcompass.local")
	v.SetDefault("BREVO_SENDER_NAME", "AssetCompass")
	v.SetDefault("NOTIFY_QUEUE_SIZE", 256)
	v.SetDefault("NOTIFY_WORKERS", 2)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		DatabaseURL:         v.GetString("PGSQL_URL"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:       strings.ToLower(v.GetString("STORAGE_DRIVER")),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS"), false),
		AlphaVantageAPIKey:  v.GetString("ALPHAVANTAGE_API_KEY"),
		AlphaVantageBaseURL: v.GetString("ALPHAVANTAGE_BASE_URL"),
		CryptoSymbols:       splitList(v.GetString("CRYPTO_SYMBOLS"), true),
		ReferenceCurrency:   strings.ToUpper(strings.TrimSpace(v.GetString("REFERENCE_CURRENCY"))),
		RedisURL:            v.GetString("REDIS_URL"),
		FXWarmSchedule:      strings.TrimSpace(v.GetString("FX_WARM_SCHEDULE")),
		FXWarmCurrencies:    splitList(v.GetString("FX_WARM_CURRENCIES"), true),
		BrevoAPIKey:         v.GetString("BREVO_API_KEY"),
		BrevoSenderEmail:    v.GetString("BREVO_SENDER_EMAIL"),
		BrevoSenderName:     v.GetString("BREVO_SENDER_NAME"),
		NotifyQueueSize:     v.GetInt("NOTIFY_QUEUE_SIZE"),
		NotifyWorkers:       v.GetInt("NOTIFY_WORKERS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_DRIVER is %q", StoragePostgres)
		}
	case StorageMemory:
		log.Println("Warning: STORAGE_DRIVER is memory. Holdings are lost on restart.")
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	timeoutStr := v.GetString("MARKET_FETCH_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for MARKET_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.MarketFetchTimeout = timeout

	if len(cfg.ReferenceCurrency) != 3 {
		return nil, fmt.Errorf("REFERENCE_CURRENCY must be a 3 letter code, got %q", cfg.ReferenceCurrency)
	}

	seeds, err := ParseSeedRates(v.GetString("FX_SEED_RATES"))
	if err != nil {
		return nil, err
	}
	cfg.FXSeedRates = seeds

	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.AlphaVantageAPIKey == "demo" {
		log.Println("Warning: ALPHAVANTAGE_API_KEY not set. Live quotes will mostly fall back.")
	}
	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = 256
	}
	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = 1
	}

	return cfg, nil
}

// ParseSeedRates parses "ZAR=18.50,EUR=0.92" into positive USD/<code> rates.
func ParseSeedRates(s string) (map[string]decimal.Decimal, error) {
	seeds := make(map[string]decimal.Decimal)
	for _, item := range splitList(s, false) {
		code, rateStr, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid FX_SEED_RATES entry %q: expected CODE=RATE", item)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rateStr))
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("invalid FX_SEED_RATES rate for %q: %q", code, rateStr)
		}
		seeds[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return seeds, nil
}

func splitList(s string, upper bool) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if upper {
			part = strings.ToUpper(part)
		}
		out = append(out, part)
	}
	return out
}
