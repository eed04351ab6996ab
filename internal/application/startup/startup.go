// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/application/container"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/database"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	persistence "github.com/AtRiskMedia/landstack-go/internal/infrastructure/persistence/database"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/server"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// Initialize performs the complete startup sequence and blocks until a
// shutdown signal arrives.
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	log.Println("\033[32m" + `
  █   ▄▀█ █▄ █ █▀▄ █▀ ▀█▀ ▄▀█ █▀▀ █▄▀
  █▄▄ █▀█ █ ▀█ █▄▀ ▄█  █  █▀█ █▄▄ █ █
` + "\033[0m")

	// Step 1: Initialize channeled logging
	logger, err := NewLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()
	logger.Startup().Info("Logger initialized", "level", config.LogLevel, "json", config.LogJSON)

	// Step 2: Connect to the database
	stepStart := time.Now()
	db, err := OpenDatabase(ctx, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.LogStartupPhase("database", time.Since(stepStart), true)

	// Step 3: Create dependency injection container
	stepStart = time.Now()
	appContainer, err := container.NewContainer(ctx, db, logger)
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}
	logger.LogStartupPhase("container", time.Since(stepStart), true)

	// Step 4: Install system component templates
	if n, err := appContainer.TemplateService.EnsureSystemTemplates(ctx); err != nil {
		logger.Startup().Error("System template install failed", "error", err.Error())
	} else if n > 0 {
		logger.Startup().Info("System templates installed", "count", n)
	}

	// Step 5: Start the preview hub
	go appContainer.PreviewHub.Run(ctx)

	// Step 6: Schedule background jobs
	if err := appContainer.Scheduler.Every("expire_pages", config.ExpiryCheckInterval, func(ctx context.Context) error {
		n, err := appContainer.PageService.ArchiveExpired(ctx)
		if n > 0 {
			logger.Scheduler().Info("Expired pages archived", "count", n)
		}
		return err
	}); err != nil {
		return err
	}
	appContainer.Scheduler.Start()

	// Step 7: Start HTTP server
	httpServer := server.New(config.Port, appContainer)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start()
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", config.Port)

	// Step 8: Wait for a shutdown signal
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-gracefulShutdown:
		logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
	case err := <-serverErr:
		if err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
			return err
		}
	}

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	if err := appContainer.Close(); err != nil {
		logger.Shutdown().Error("Error closing background services", "error", err.Error())
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// NewLogger builds the channeled logger from the process configuration.
func NewLogger() (*logging.ChanneledLogger, error) {
	cfg := logging.DefaultLoggerConfig()
	cfg.JSONFormat = config.LogJSON

	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err == nil {
		cfg.DefaultLevel = level
	}
	if config.LogDir != "" {
		cfg.OutputToFile = true
		cfg.LogDirectory = config.LogDir
	}
	return logging.NewChanneledLogger(cfg)
}

// OpenDatabase connects to the configured store and ensures the schema.
func OpenDatabase(ctx context.Context, logger *logging.ChanneledLogger) (*persistence.DB, error) {
	db, err := persistence.Open(ctx, persistence.OptionsFromConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.NewTableCreator().CreateSchema(ctx, db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// setupLogging configures the standard library logger used before the
// channeled logger exists.
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
