package fx

import (
	"context"
	"net/http"
	"time"

	"layoutdss/internal/config"
	"layoutdss/internal/database"
	"layoutdss/internal/module/layout/scheduler"

	presetHandler "layoutdss/internal/module/layout/preset/handler"
	solveHandler "layoutdss/internal/module/layout/solve/handler"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppModule provides the main application dependencies
var AppModule = fx.Module("app",
	fx.Invoke(
		// Run migrations and seeding (must run before server starts)
		RunMigrationsAndSeeding,

		// Register routes
		RegisterRoutes,

		// Start server
		StartServer,

		// Start background maintenance jobs
		StartScheduler,
	),
)

// RegisterRoutes registers all API routes
func RegisterRoutes(
	router *gin.Engine,
	solveH *solveHandler.Handler,
	streamH *solveHandler.WebSocketHandler,
	presetH *presetHandler.Handler,
	logger *zap.Logger,
) {
	logger.Info("=== Route Registration Phase ===")

	logger.Info("Registering layout solve routes...")
	solveH.RegisterRoutes(router)

	logger.Info("Registering layout solve stream routes...")
	streamH.RegisterRoutes(router)

	logger.Info("Registering layout preset routes...")
	presetH.RegisterRoutes(router)

	logger.Info("All routes registered successfully")
}

// RunMigrationsAndSeeding runs database migrations and seeding
func RunMigrationsAndSeeding(
	db *gorm.DB,
	cfg *config.Config,
	logger *zap.Logger,
) {
	logger.Info("=== Database Migration & Seeding Phase ===")

	logger.Info("Starting database migrations...")
	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Demo presets only exist in development
	if config.IsDevelopment() {
		logger.Info("Running database seeding (development mode)...")
		seeder := database.NewSeeder(db, logger)
		if err := seeder.SeedAll(); err != nil {
			logger.Warn("Seeding failed", zap.Error(err))
		}
	} else {
		logger.Info("Skipping database seeding (production mode)")
	}

	logger.Info("=== Migration & Seeding Complete ===")
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server",
					zap.String("addr", server.Addr),
					zap.Duration("read_timeout", 15*time.Second),
					zap.Duration("write_timeout", 15*time.Second),
					zap.Duration("idle_timeout", 60*time.Second),
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

// StartScheduler ties the maintenance scheduler to the application lifecycle
func StartScheduler(lc fx.Lifecycle, sched scheduler.Service, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop()
			return nil
		},
	})
}
