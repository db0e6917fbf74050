package cmd

import (
	"log"

	"simplexdss/internal/config"
	"simplexdss/internal/fx"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the Simplex DSS API server with all services.`,
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() {
	log.Println("========================================")
	log.Println("  Simplex DSS API Server")
	log.Println("========================================")
	log.Println()

	// Load configuration
	log.Println("Loading configuration...")
	cfg := config.Load()

	// Validate configuration
	if err := config.ValidateConfig(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Print configuration
	config.PrintConfig()

	log.Println()
	log.Printf("Server: http://%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Swagger: http://%s:%s/swagger/index.html", cfg.Server.Host, cfg.Server.Port)

	if config.IsDevelopment() {
		log.Println("Mode: DEVELOPMENT")
	} else {
		log.Println("Mode: PRODUCTION")
	}

	log.Println()
	log.Println("Initializing dependency injection (Uber FX)...")

	// Run FX application
	fx.Application().Run()
}
