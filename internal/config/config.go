package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig aggregates runtime configuration. Everything is injected
// through environment variables; defaults suit local development.
type AppConfig struct {
	HTTPAddr string
	DBPath   string

	RedisAddr string
	RedisDB   int

	// Kafka cluster (comma separated), topic and consumer group for
	// the contract event pipeline.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	// Redis Stream outbox (services append, the relay forwards to
	// Kafka asynchronously).
	ContractEventStream   string
	ContractEventGroup    string
	ContractEventConsumer string

	// Contract-create throttling and the stock cache policy.
	ContractRateLimit  int
	ContractRateWindow time.Duration
	StockCacheTTL      time.Duration

	// Bearer token signing.
	JWTSecret string
	TokenTTL  time.Duration

	// Local blob store for catalog and admin images.
	UploadDir string
}

// Load reads and validates the configuration, falling back to defaults
// where a variable is unset.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		DBPath:                getEnv("DB_PATH", "parts_office.db"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:               0,
		KafkaBrokers:          splitCSV(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:            getEnv("KAFKA_TOPIC", "parts-office-contracts"),
		KafkaGroupID:          getEnv("KAFKA_GROUP_ID", "parts-office-contract-consumer"),
		ContractEventStream:   getEnv("CONTRACT_EVENT_STREAM", "parts_office:contract_events"),
		ContractEventGroup:    getEnv("CONTRACT_EVENT_GROUP", "parts-office-relay-group"),
		ContractEventConsumer: getEnv("CONTRACT_EVENT_CONSUMER", "parts-office-relay-1"),
		ContractRateLimit:     100,
		ContractRateWindow:    time.Second,
		StockCacheTTL:         24 * time.Hour,
		JWTSecret:             getEnv("JWT_ACCESS_TOKEN", "dev-access-secret"),
		TokenTTL:              24 * time.Hour,
		UploadDir:             getEnv("UPLOAD_DIR", "uploads"),
	}

	redisDB, err := getEnvInt("REDIS_DB", cfg.RedisDB)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	rateLimit, err := getEnvInt("CONTRACT_RATE_LIMIT", cfg.ContractRateLimit)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid CONTRACT_RATE_LIMIT: %w", err)
	}
	if rateLimit <= 0 {
		return AppConfig{}, fmt.Errorf("CONTRACT_RATE_LIMIT must be > 0")
	}
	cfg.ContractRateLimit = rateLimit

	rateWindowSec, err := getEnvInt("CONTRACT_RATE_WINDOW_SEC", int(cfg.ContractRateWindow.Seconds()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid CONTRACT_RATE_WINDOW_SEC: %w", err)
	}
	if rateWindowSec <= 0 {
		return AppConfig{}, fmt.Errorf("CONTRACT_RATE_WINDOW_SEC must be > 0")
	}
	cfg.ContractRateWindow = time.Duration(rateWindowSec) * time.Second

	stockTTLHour, err := getEnvInt("STOCK_CACHE_TTL_HOUR", int(cfg.StockCacheTTL.Hours()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid STOCK_CACHE_TTL_HOUR: %w", err)
	}
	if stockTTLHour <= 0 {
		return AppConfig{}, fmt.Errorf("STOCK_CACHE_TTL_HOUR must be > 0")
	}
	cfg.StockCacheTTL = time.Duration(stockTTLHour) * time.Hour

	tokenTTLHour, err := getEnvInt("TOKEN_TTL_HOUR", int(cfg.TokenTTL.Hours()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid TOKEN_TTL_HOUR: %w", err)
	}
	if tokenTTLHour <= 0 {
		return AppConfig{}, fmt.Errorf("TOKEN_TTL_HOUR must be > 0")
	}
	cfg.TokenTTL = time.Duration(tokenTTLHour) * time.Hour

	if cfg.JWTSecret == "" {
		return AppConfig{}, fmt.Errorf("JWT_ACCESS_TOKEN must not be empty")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return AppConfig{}, fmt.Errorf("KAFKA_BROKERS must not be empty")
	}
	if cfg.KafkaTopic == "" {
		return AppConfig{}, fmt.Errorf("KAFKA_TOPIC must not be empty")
	}
	if cfg.KafkaGroupID == "" {
		return AppConfig{}, fmt.Errorf("KAFKA_GROUP_ID must not be empty")
	}
	if cfg.ContractEventStream == "" {
		return AppConfig{}, fmt.Errorf("CONTRACT_EVENT_STREAM must not be empty")
	}
	if cfg.ContractEventGroup == "" {
		return AppConfig{}, fmt.Errorf("CONTRACT_EVENT_GROUP must not be empty")
	}
	if cfg.ContractEventConsumer == "" {
		return AppConfig{}, fmt.Errorf("CONTRACT_EVENT_CONSUMER must not be empty")
	}

	return cfg, nil
}

// getEnv reads a string variable, returning the fallback when unset.
func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// getEnvInt reads an integer variable, returning the fallback when unset.
func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

// splitCSV parses a comma-separated string into a slice.
func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
