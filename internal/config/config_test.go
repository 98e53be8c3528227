package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKeyNesting(t *testing.T) {
	assert.Equal(t, "server.port", envKey("ESTATE_SERVER__PORT"))
	assert.Equal(t, "database.max_open_conns", envKey("ESTATE_DATABASE__MAX_OPEN_CONNS"))
	assert.Equal(t, "observability.logging.level", envKey("ESTATE_OBSERVABILITY__LOGGING__LEVEL"))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Primary: Primary{Env: "staging"}}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "staging", cfg.Observability.Environment)
	assert.Equal(t, DefaultListingTTL, cfg.Cache.ListingTTL)
	assert.NotEmpty(t, cfg.Integration.FromAddress)
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.HasDocumentStore())
	assert.False(t, cfg.HasRedis())
}

func TestApplyDefaultsKeepsExplicitTTL(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{ListingTTL: 30 * time.Second}}
	cfg.applyDefaults()
	assert.Equal(t, 30*time.Second, cfg.Cache.ListingTTL)
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.CheckEnabled("database"))
	assert.False(t, cfg.CheckEnabled("smtp"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.CheckEnabled("database"))
}
