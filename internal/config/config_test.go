package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.HTTPAddr)
	assert.Empty(t, cfg.GRPCAddr)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "filtered", cfg.PriceProfile)
	assert.Empty(t, cfg.DefaultTrade)
	assert.Empty(t, cfg.UpstreamURL, "client falls back to its own default endpoint")
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"VN"}, cfg.Countries)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("GRPC_ADDR", ":50051")
	t.Setenv("DEBUG", "true")
	t.Setenv("PRICE_PROFILE", "Minimal")
	t.Setenv("DEFAULT_TRADE_TYPE", "buy")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_COUNTRIES", "vn, th ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "minimal", cfg.PriceProfile)
	assert.Equal(t, "BUY", cfg.DefaultTrade)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"VN", "TH"}, cfg.Countries)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string][2]string{
		"bad profile":  {"PRICE_PROFILE", "legacy"},
		"bad trade":    {"DEFAULT_TRADE_TYPE", "HOLD"},
		"bad timeout":  {"UPSTREAM_TIMEOUT", "soon"},
		"zero timeout": {"UPSTREAM_TIMEOUT", "0s"},
		"bad url":      {"UPSTREAM_URL", "not a url"},
		"bad addr":     {"HTTP_ADDR", "nowhere"},
		"bad level":    {"LOG_LEVEL", "loud"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
