package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Plot      PlotConfig
	Cleanup   CleanupConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	URL    string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file location
}

type CORSConfig struct {
	Origins []string
}

type RedisConfig struct {
	URL         string
	CacheTTLMin int
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

type LoggingConfig struct {
	Level  string
	Format string
}

type PlotConfig struct {
	Dir string // where generated graph PNGs are written
}

type CleanupConfig struct {
	Enabled   bool
	Schedule  string // cron expression for the graph sweep
	MaxAgeMin int    // graphs older than this are removed
}

// Load initializes and loads configuration using Viper
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: .env file not found, using environment variables and defaults")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	} else {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Database: DatabaseConfig{
			Driver: viper.GetString("DB_DRIVER"),
			URL:    viper.GetString("DATABASE_URL"),
			Host:   viper.GetString("DB_HOST"),
			Port:   viper.GetInt("DB_PORT"),
			User:   viper.GetString("DB_USER"),
			Pass:   viper.GetString("DB_PASSWORD"),
			Name:   viper.GetString("DB_NAME"),
			Path:   viper.GetString("DB_PATH"),
		},
		CORS: CORSConfig{
			Origins: viper.GetStringSlice("CORS_ORIGINS"),
		},
		Redis: RedisConfig{
			URL:         viper.GetString("REDIS_URL"),
			CacheTTLMin: viper.GetInt("RESULT_CACHE_TTL_MIN"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetInt("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Plot: PlotConfig{
			Dir: viper.GetString("PLOT_DIR"),
		},
		Cleanup: CleanupConfig{
			Enabled:   viper.GetBool("CLEANUP_ENABLED"),
			Schedule:  viper.GetString("CLEANUP_SCHEDULE"),
			MaxAgeMin: viper.GetInt("CLEANUP_MAX_AGE_MIN"),
		},
	}
}

// setDefaults sets default values for all configuration options
func setDefaults() {
	// Server
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("ENV", "development")

	// Database
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "simplex_user")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "simplex_dss")
	viper.SetDefault("DB_PATH", "simplex.db")

	// CORS
	viper.SetDefault("CORS_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"})

	// Redis result cache (empty URL disables it)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RESULT_CACHE_TTL_MIN", 60)

	// Rate limiting
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	// Logging
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	// Graph rendering
	viper.SetDefault("PLOT_DIR", filepath.Join(os.TempDir(), "simplex-graphs"))

	// Graph sweep
	viper.SetDefault("CLEANUP_ENABLED", true)
	viper.SetDefault("CLEANUP_SCHEDULE", "@every 10m")
	viper.SetDefault("CLEANUP_MAX_AGE_MIN", 30)
}

// IsProduction reports whether the service runs in production mode.
func IsProduction() bool {
	return viper.GetString("ENV") == "production"
}

// IsDevelopment reports whether the service runs in development mode.
func IsDevelopment() bool {
	return !IsProduction()
}
