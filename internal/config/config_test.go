package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("BANK_BRANCH", "")
	t.Setenv("WITHDRAWAL_CAP", "")
	t.Setenv("WITHDRAWALS_PER_PERIOD", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "verdebank", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0001", cfg.Branch)
	assert.True(t, cfg.WithdrawalCap.Equal(mustDecimal(t, "500.00")))
	assert.Equal(t, 3, cfg.WithdrawalsPerPeriod)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "mybank")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("BANK_BRANCH", "0042")
	t.Setenv("WITHDRAWAL_CAP", "750.50")
	t.Setenv("WITHDRAWALS_PER_PERIOD", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mybank", cfg.AppName)
	assert.Equal(t, "debug", cfg.LogLevel, "level is normalized to lower case")
	assert.Equal(t, "0042", cfg.Branch)
	assert.True(t, cfg.WithdrawalCap.Equal(mustDecimal(t, "750.50")))
	assert.Equal(t, 5, cfg.WithdrawalsPerPeriod)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WITHDRAWAL_CAP", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WITHDRAWAL_CAP")

	t.Setenv("WITHDRAWAL_CAP", "500.00")
	t.Setenv("WITHDRAWALS_PER_PERIOD", "zero")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WITHDRAWALS_PER_PERIOD")

	t.Setenv("WITHDRAWALS_PER_PERIOD", "-1")
	_, err = Load()
	require.Error(t, err)
}
