package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	defaultAppName       = "verdebank"
	defaultLogLevel      = "info"
	defaultBranch        = "0001"
	defaultWithdrawalCap = "500.00"
	defaultWithdrawals   = 3

	withdrawalCapEnvVar = "WITHDRAWAL_CAP"
	withdrawalsEnvVar   = "WITHDRAWALS_PER_PERIOD"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName              string
	LogLevel             string
	Branch               string
	WithdrawalCap        decimal.Decimal
	WithdrawalsPerPeriod int
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:              getEnv("APP_NAME", defaultAppName),
		LogLevel:             strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		Branch:               getEnv("BANK_BRANCH", defaultBranch),
		WithdrawalsPerPeriod: defaultWithdrawals,
	}

	capValue, err := decimal.NewFromString(getEnv(withdrawalCapEnvVar, defaultWithdrawalCap))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", withdrawalCapEnvVar, err)
	}
	cfg.WithdrawalCap = capValue

	if v := os.Getenv(withdrawalsEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", withdrawalsEnvVar, err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("invalid %s: must be positive", withdrawalsEnvVar)
		}
		cfg.WithdrawalsPerPeriod = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
