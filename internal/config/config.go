package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Engine holds the analytics constants that used to live as magic
// numbers inside the calculation code. Every engine service receives
// this struct so scenario-specific overrides and tests can replace
// individual values.
type Engine struct {
	RiskFreeRate       float64 // annual, percent
	MarketReturn       float64 // annual, percent
	Simulations        int     // default Monte Carlo path count
	TransactionCostBps float64 // per-trade cost in basis points
	Seed               int64   // base seed for all stochastic functions
}

// DefaultEngine returns the standard engine constants.
func DefaultEngine() Engine {
	return Engine{
		RiskFreeRate:       4.5,
		MarketReturn:       10.0,
		Simulations:        10000,
		TransactionCostBps: 10.0,
		Seed:               1,
	}
}

// Config holds application configuration
type Config struct {
	Port                  int
	DevMode               bool
	LogLevel              string
	DatabasePath          string
	SnapshotRetentionDays int
	Engine                Engine
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnvAsInt("PORT", 8080),
		DevMode:               getEnvAsBool("DEV_MODE", false),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		DatabasePath:          getEnv("DATABASE_PATH", "./data/snapshots.db"),
		SnapshotRetentionDays: getEnvAsInt("SNAPSHOT_RETENTION_DAYS", 365),
		Engine: Engine{
			RiskFreeRate:       getEnvAsFloat("RISK_FREE_RATE", 4.5),
			MarketReturn:       getEnvAsFloat("MARKET_RETURN", 10.0),
			Simulations:        getEnvAsInt("MONTE_CARLO_SIMULATIONS", 10000),
			TransactionCostBps: getEnvAsFloat("TRANSACTION_COST_BPS", 10.0),
			Seed:               int64(getEnvAsInt("ENGINE_SEED", 1)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.Engine.Simulations <= 0 {
		return fmt.Errorf("MONTE_CARLO_SIMULATIONS must be positive")
	}
	if c.Engine.TransactionCostBps < 0 {
		return fmt.Errorf("TRANSACTION_COST_BPS must not be negative")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
