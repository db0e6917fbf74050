package fx

import (
	"context"
	"net/http"
	"time"

	"simplexdss/internal/config"
	"simplexdss/internal/database"
	historyHandler "simplexdss/internal/module/history/handler"
	simplexHandler "simplexdss/internal/module/simplex/handler"
	"simplexdss/internal/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppModule provides the main application dependencies
var AppModule = fx.Module("app",
	fx.Invoke(
		// Run migrations (must run before server starts)
		RunMigrations,

		// Register routes
		RegisterRoutes,

		// Start background workers
		StartCleanupWorker,

		// Start server
		StartServer,
	),
)

// RegisterRoutes registers all API routes
func RegisterRoutes(
	router *gin.Engine,
	simplexH *simplexHandler.Handler,
	wsH *simplexHandler.WebSocketHandler,
	historyH *historyHandler.Handler,
	logger *zap.Logger,
) {
	logger.Info("Registering simplex routes...")
	simplexH.RegisterRoutes(router)

	logger.Info("Registering websocket routes...")
	wsH.RegisterRoutes(router)

	logger.Info("Registering history routes...")
	historyH.RegisterRoutes(router)

	logger.Info("All routes registered successfully")
}

// RunMigrations runs database migrations
func RunMigrations(db *gorm.DB, logger *zap.Logger) {
	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
}

// StartCleanupWorker ties the graph sweep to the application lifecycle.
func StartCleanupWorker(lc fx.Lifecycle, w *worker.CleanupWorker, cfg *config.Config, logger *zap.Logger) {
	if !cfg.Cleanup.Enabled {
		logger.Info("Graph cleanup worker is disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return w.Start()
		},
		OnStop: func(ctx context.Context) error {
			w.Stop()
			return nil
		},
	})
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server",
					zap.String("addr", server.Addr),
				)
				logger.Info("Server URLs",
					zap.String("base", "http://"+cfg.Server.Host+":"+cfg.Server.Port),
					zap.String("swagger", "http://"+cfg.Server.Host+":"+cfg.Server.Port+"/swagger/index.html"),
					zap.String("health", "http://"+cfg.Server.Host+":"+cfg.Server.Port+"/health"),
				)

				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down HTTP server...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("Server forced to shutdown", zap.Error(err))
				return err
			}

			logger.Info("Server gracefully stopped")
			return nil
		},
	})
}
