package fx

import (
	"fmt"
	"net/http"
	"time"

	"simplexdss/internal/config"
	"simplexdss/internal/logger"
	"simplexdss/internal/middleware"
	simplexservice "simplexdss/internal/module/simplex/service"
	"simplexdss/internal/shared"
	"simplexdss/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CoreModule provides core application dependencies
var CoreModule = fx.Module("core",
	fx.Provide(
		// Configuration
		config.Load,

		// Logger (must be early)
		NewLogger,

		// Database
		NewDatabase,

		// Solve result cache
		NewResultCache,

		// Gin router
		NewGinRouter,

		// Graph cleanup worker
		NewCleanupWorker,
	),
)

// NewLogger creates a new zap logger based on config
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Logger initialized",
		zap.String("level", cfg.Logging.Level),
		zap.String("format", cfg.Logging.Format),
	)

	return log, nil
}

// NewDatabase opens the solve-history database. SQLite is the default for
// single-node deployments; Postgres is selected by config.
func NewDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dsn := cfg.Database.URL
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				cfg.Database.Host,
				cfg.Database.Port,
				cfg.Database.User,
				cfg.Database.Pass,
				cfg.Database.Name,
			)
		}
		log.Info("Connecting to database",
			zap.String("driver", "postgres"),
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Name),
		)
		dialector = postgres.Open(dsn)
	default:
		log.Info("Connecting to database",
			zap.String("driver", "sqlite"),
			zap.String("path", cfg.Database.Path),
		)
		dialector = sqlite.Open(cfg.Database.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("Successfully connected to database")
	return db, nil
}

// NewResultCache wires the solve result cache: Redis when an endpoint is
// configured, otherwise a no-op.
func NewResultCache(cfg *config.Config, log *zap.Logger) (simplexservice.ResultCache, error) {
	if cfg.Redis.URL == "" {
		log.Info("Result cache disabled (no REDIS_URL)")
		return simplexservice.NoopCache{}, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	ttl := time.Duration(cfg.Redis.CacheTTLMin) * time.Minute

	log.Info("Result cache enabled",
		zap.String("addr", opts.Addr),
		zap.Duration("ttl", ttl),
	)
	return simplexservice.NewRedisCache(client, ttl, log), nil
}

// NewCleanupWorker builds the graph sweep worker from config.
func NewCleanupWorker(cfg *config.Config, log *zap.Logger) *worker.CleanupWorker {
	return worker.NewCleanupWorker(
		cfg.Plot.Dir,
		cfg.Cleanup.Schedule,
		time.Duration(cfg.Cleanup.MaxAgeMin)*time.Minute,
		log,
	)
}

// NewGinRouter creates a new Gin router with basic configuration
func NewGinRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Apply logger middleware first so it's available in all subsequent middleware
	r.Use(middleware.LoggerMiddleware(log))

	// Apply recovery middleware
	r.Use(middleware.RecoveryMiddleware())

	// Apply error handler middleware
	r.Use(middleware.ErrorHandlerMiddleware())

	// Apply CORS middleware
	r.Use(middleware.NewCORS(cfg.CORS.Origins))

	// Apply rate limiting middleware (global IP-based rate limiting)
	r.Use(middleware.IPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		shared.RespondWithSuccess(c, http.StatusOK, "Service is healthy", gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Static assets and the solver pages
	r.Static("/static", "./frontend/static")
	r.StaticFile("/", "./frontend/templates/index.html")
	r.StaticFile("/tablas", "./frontend/templates/tablas.html")

	// Serve the OpenAPI spec and the Swagger UI
	r.StaticFile("/openapi/swagger.yaml", "./docs/swagger.yaml")
	url := ginSwagger.URL("/openapi/swagger.yaml")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url,
		ginSwagger.DocExpansion("list"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	return r
}
