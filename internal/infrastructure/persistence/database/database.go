// Package database provides the core functionality for creating and managing
// database connections in a clean, isolated manner.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
	"github.com/cenkalti/backoff/v4"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

const (
	DriverLibSQL = "libsql"
	DriverSQLite = "sqlite3"
)

// DB represents a wrapper around the standard SQL database connection.
type DB struct {
	*sql.DB
	Driver string
}

// Options selects the backing store. A non-empty URL selects Turso/libsql,
// otherwise SQLitePath is opened with the sqlite3 driver.
type Options struct {
	URL        string
	AuthToken  string
	SQLitePath string
	MaxElapsed time.Duration
}

// OptionsFromConfig builds Options from the process configuration.
func OptionsFromConfig() Options {
	return Options{
		URL:        config.DatabaseURL,
		AuthToken:  config.DatabaseAuthToken,
		SQLitePath: config.SQLitePath,
		MaxElapsed: config.DBConnectMaxElapsed,
	}
}

func (o Options) driverAndDSN() (string, string) {
	if o.URL != "" {
		dsn := o.URL
		if o.AuthToken != "" {
			dsn = fmt.Sprintf("%s?authToken=%s", o.URL, o.AuthToken)
		}
		return DriverLibSQL, dsn
	}
	return DriverSQLite, o.SQLitePath
}

// Open connects to the configured store, retrying the initial ping with
// exponential backoff until MaxElapsed.
func Open(ctx context.Context, opts Options, logger *logging.ChanneledLogger) (*DB, error) {
	start := time.Now()
	driver, dsn := opts.driverAndDSN()
	logger.Database().Debug("Creating new database connection", "driverName", driver)

	if driver == DriverSQLite && !isMemory(dsn) {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		logger.Database().Error("Failed to open database connection", "error", err.Error(), "driverName", driver)
		return nil, fmt.Errorf("failed to open %s connection: %w", driver, err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 250 * time.Millisecond
	policy.MaxElapsedTime = opts.MaxElapsed
	attempt := 0
	ping := func() error {
		attempt++
		if err := conn.PingContext(ctx); err != nil {
			logger.Database().Warn("Database ping failed", "error", err.Error(), "driverName", driver, "attempt", attempt)
			return err
		}
		return nil
	}
	if err := backoff.Retry(ping, backoff.WithContext(policy, ctx)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
	}

	if isMemory(dsn) {
		// Each connection to :memory: is a separate database.
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(config.DBMaxOpenConns)
		conn.SetMaxIdleConns(config.DBMaxIdleConns)
		conn.SetConnMaxLifetime(time.Duration(config.DBConnMaxLifetimeMinutes) * time.Minute)
	}
	if driver == DriverSQLite {
		if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	duration := time.Since(start)
	logger.Database().Info("Database connection established", "driverName", driver, "attempts", attempt, "duration", duration)
	CheckAndLogSlowQuery(logger, "DATABASE_CONNECTION", duration, "system")

	return &DB{DB: conn, Driver: driver}, nil
}

// OpenMemory opens a private in-memory sqlite database. Intended for tests
// and the schema command's dry run.
func OpenMemory(ctx context.Context, logger *logging.ChanneledLogger) (*DB, error) {
	return Open(ctx, Options{SQLitePath: ":memory:", MaxElapsed: time.Second}, logger)
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}
