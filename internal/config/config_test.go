package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "simplex.db", cfg.Database.Path)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 50, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.True(t, cfg.Cleanup.Enabled)
	assert.Equal(t, "@every 10m", cfg.Cleanup.Schedule)
	assert.NotEmpty(t, cfg.Plot.Dir)
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PORT", "9999")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidateConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	require.NoError(t, ValidateConfig())

	viper.Set("DB_DRIVER", "oracle")
	assert.Error(t, ValidateConfig())

	viper.Set("DB_DRIVER", "postgres")
	viper.Set("DATABASE_URL", "")
	viper.Set("DB_HOST", "")
	assert.Error(t, ValidateConfig())

	viper.Set("DATABASE_URL", "postgres://u:p@localhost/simplex")
	assert.NoError(t, ValidateConfig())
}

func TestEnvironmentHelpers(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	assert.True(t, IsDevelopment())
	assert.False(t, IsProduction())

	viper.Set("ENV", "production")
	assert.True(t, IsProduction())
}
