package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates required configuration values
func ValidateConfig() error {
	driver := viper.GetString("DB_DRIVER")
	if driver != "sqlite" && driver != "postgres" {
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", driver)
	}

	if driver == "postgres" && viper.GetString("DATABASE_URL") == "" {
		requiredKeys := []string{"DB_HOST", "DB_USER", "DB_NAME"}

		var missingKeys []string
		for _, key := range requiredKeys {
			if !viper.IsSet(key) || viper.GetString(key) == "" {
				missingKeys = append(missingKeys, key)
			}
		}

		if len(missingKeys) > 0 {
			return fmt.Errorf("missing required configuration keys: %s", strings.Join(missingKeys, ", "))
		}
	}

	if viper.GetBool("CLEANUP_ENABLED") && viper.GetString("CLEANUP_SCHEDULE") == "" {
		return fmt.Errorf("CLEANUP_SCHEDULE must be set when CLEANUP_ENABLED is true")
	}

	return nil
}

// PrintConfig prints current configuration (excluding sensitive data)
func PrintConfig() {
	log.Println("=== Configuration ===")

	log.Printf("Server: %s:%s", viper.GetString("HOST"), viper.GetString("PORT"))
	log.Printf("Environment: %s", viper.GetString("ENV"))

	log.Printf("Database Driver: %s", viper.GetString("DB_DRIVER"))
	if viper.GetString("DB_DRIVER") == "sqlite" {
		log.Printf("Database Path: %s", viper.GetString("DB_PATH"))
	} else {
		log.Printf("Database: %s:%d/%s", viper.GetString("DB_HOST"), viper.GetInt("DB_PORT"), viper.GetString("DB_NAME"))
	}

	log.Printf("CORS Origins: %v", viper.GetStringSlice("CORS_ORIGINS"))

	if viper.GetString("REDIS_URL") != "" {
		log.Printf("Result Cache: redis (%d min TTL)", viper.GetInt("RESULT_CACHE_TTL_MIN"))
	} else {
		log.Printf("Result Cache: disabled")
	}

	log.Printf("Rate Limit: %d rps (burst %d)", viper.GetInt("RATE_LIMIT_RPS"), viper.GetInt("RATE_LIMIT_BURST"))
	log.Printf("Plot Dir: %s", viper.GetString("PLOT_DIR"))
	log.Printf("Graph Sweep: enabled=%v schedule=%q max_age=%dmin",
		viper.GetBool("CLEANUP_ENABLED"), viper.GetString("CLEANUP_SCHEDULE"), viper.GetInt("CLEANUP_MAX_AGE_MIN"))

	log.Printf("Log Level: %s", viper.GetString("LOG_LEVEL"))
	log.Printf("Log Format: %s", viper.GetString("LOG_FORMAT"))

	log.Println("=====================")
}
