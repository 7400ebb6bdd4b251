package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("MERCHANT_PHONE")
	os.Unsetenv("MERCHANT_EMAIL")

	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	defer os.Unsetenv("REDIS_URL")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)

	// Merchant contact defaults to the unconfigured placeholders.
	assert.Equal(t, "+91XXXXXXXXXX", cfg.Merchant.Phone)
	assert.Equal(t, "merchant@example.com", cfg.Merchant.Email)
	assert.Equal(t, "ANE", cfg.Merchant.OrderPrefix)

	assert.Equal(t, 1000, cfg.Shipping.FreeAbove)
	assert.Equal(t, 50, cfg.Shipping.FlatRate)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REDIS_URL", "redis://cache.internal:6379/1")
	os.Setenv("MERCHANT_PHONE", "+919876543210")
	os.Setenv("MERCHANT_EMAIL", "orders@shop.in")
	os.Setenv("ORDER_ID_PREFIX", "SHP")
	os.Setenv("SHIPPING_FREE_ABOVE", "2000")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("MERCHANT_PHONE")
		os.Unsetenv("MERCHANT_EMAIL")
		os.Unsetenv("ORDER_ID_PREFIX")
		os.Unsetenv("SHIPPING_FREE_ABOVE")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis://cache.internal:6379/1", cfg.RedisURL)
	assert.Equal(t, "+919876543210", cfg.Merchant.Phone)
	assert.Equal(t, "orders@shop.in", cfg.Merchant.Email)
	assert.Equal(t, "SHP", cfg.Merchant.OrderPrefix)
	assert.Equal(t, 2000, cfg.Shipping.FreeAbove)
}

// TestLoad_MissingRequired verifies that missing required values fail loading.
func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REDIS_URL")

	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REDIS_URL")
}
