package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"CONTACT_SERVER__PORT":                          "server.port",
		"CONTACT_SERVER__READ_TIMEOUT":                  "server.read_timeout",
		"CONTACT_STORE__DRIVER":                         "store.driver",
		"CONTACT_OBSERVABILITY__NEW_RELIC__LICENSE_KEY": "observability.new_relic.license_key",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "form_ns", cfg.Store.Namespace)
	assert.Equal(t, "form_db", cfg.Store.Database)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.True(t, cfg.AllowsAnyOrigin())
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("CONTACT_PRIMARY__ENV", "production")
	t.Setenv("CONTACT_SERVER__PORT", "9090")
	t.Setenv("CONTACT_SERVER__READ_TIMEOUT", "5")
	t.Setenv("CONTACT_STORE__NAMESPACE", "other_ns")
	t.Setenv("CONTACT_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, "other_ns", cfg.Store.Namespace)
	assert.Equal(t, "form_db", cfg.Store.Database)
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_CORSOriginList(t *testing.T) {
	t.Setenv("CONTACT_SERVER__CORS_ALLOWED_ORIGINS", "http://a.com, http://b.com,")
	t.Setenv("CONTACT_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "store")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.AllowsAnyOrigin())
	assert.Equal(t, []string{"store"}, cfg.Observability.HealthChecks.Checks)
}

func TestEnvValue(t *testing.T) {
	key, value := envValue("CONTACT_SERVER__PORT", "9090")
	assert.Equal(t, "server.port", key)
	assert.Equal(t, "9090", value)

	key, value = envValue("CONTACT_SERVER__CORS_ALLOWED_ORIGINS", "http://a.com,http://b.com")
	assert.Equal(t, "server.cors_allowed_origins", key)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, value)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("CONTACT_STORE__DRIVER", "mongodb")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestFinalize_PostgresRequiresCredentials(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Driver = DriverPostgres
	cfg.Database.User = ""

	err := cfg.finalize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")

	cfg.Database.User = "contact"
	cfg.Database.Name = "contact"
	assert.NoError(t, cfg.finalize())
}

func TestFinalize_InjectsObservabilityDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Observability = nil
	cfg.Primary.Env = "local"

	require.NoError(t, cfg.finalize())
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "local", cfg.Observability.Environment)
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.Logging.Level = "debug"
	cfg.Logging.SlowQueryThreshold = -1
	assert.Error(t, cfg.Validate())
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestObservabilityConfig_HasCheck(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HasCheck("store"))
	assert.False(t, cfg.HasCheck("kafka"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HasCheck("store"))
}
