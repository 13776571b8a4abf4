// Tracker API
//
// REST API for daily mood and sleep tracking.
//
//	@title			Tracker API
//	@version		1.0
//	@description	Daily mood and sleep tracking: bed/wake events are paired into sleep sessions and summarized per calendar day.
//
//	@BasePath	/v1
//
//	@tag.name			days
//	@tag.description	Range summaries and mood entry
//
//	@tag.name			sleep-events
//	@tag.description	Bed and wake event recording
//
//	@tag.name			settings
//	@tag.description	Per-user preferences
//
//	@tag.name			health
//	@tag.description	Identity check
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jisook325/tracker/internal/api"
	"github.com/jisook325/tracker/internal/api/handler"
	"github.com/jisook325/tracker/internal/auth"
	"github.com/jisook325/tracker/internal/config"
	"github.com/jisook325/tracker/internal/logging"
	"github.com/jisook325/tracker/internal/repository"
	"github.com/jisook325/tracker/internal/seed"
	"github.com/jisook325/tracker/internal/service"
	"github.com/jisook325/tracker/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("invalid timezone", zap.String("tz", cfg.TimezoneName), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
	}

	// Auto-migrate database schema
	if err := repository.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database migration completed", zap.String("driver", cfg.DatabaseDriver))

	if cfg.Seed {
		logger.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, db, time.Now(), loc, logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dayRepo := repository.NewDayEntryRepository(db)
	sleepEventRepo := repository.NewSleepEventRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	dayService := service.NewDayService(dayRepo, sleepEventRepo, loc)
	sleepEventService := service.NewSleepEventService(sleepEventRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	authenticator := auth.New(cfg.WorkerSecret, cfg.AuthTolerance, userService, logger)
	if authenticator.MockMode() {
		logger.Warn("WORKER_SECRET not set, accepting mock identities from X-Mock-User")
	}

	// Initialize handlers
	healthHandler := handler.NewHealthHandler()
	dayHandler := handler.NewDayHandler(dayService, logger)
	sleepEventHandler := handler.NewSleepEventHandler(sleepEventService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)

	// Setup router
	router := api.NewRouter(healthHandler, dayHandler, sleepEventHandler, settingsHandler, api.Options{
		Authenticate:   authenticator.Middleware,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	// Start server
	logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("tz", loc.String()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
