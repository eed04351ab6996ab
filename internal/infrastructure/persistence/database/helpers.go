package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
)

// Ping runs a trivial query against the connection.
func (db *DB) Ping(ctx context.Context) error {
	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("connection test query failed: %w", err)
	}
	if result != 1 {
		return fmt.Errorf("unexpected query result: %d", result)
	}
	return nil
}

// GetSlowQueryThreshold returns the configured slow query threshold
func GetSlowQueryThreshold() time.Duration {
	return config.SlowQueryThreshold
}

// CheckAndLogSlowQuery logs query on the slow-query channel when duration
// exceeds the threshold. Multi-statement writes get three times the budget.
func CheckAndLogSlowQuery(logger *logging.ChanneledLogger, query string, duration time.Duration, subject string) {
	threshold := GetSlowQueryThreshold()
	if strings.HasPrefix(query, "TX_") {
		threshold *= 3
	}
	if duration > threshold {
		logger.LogSlowQuery(query, duration, subject)
	}
}

// NullString maps "" to NULL for optional text columns.
func NullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// FormatTime is the at-rest text form of timestamps. It reads back through
// both the sqlite3 and libsql drivers.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// NullTime maps a nil time to NULL.
func NullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatTime(*t)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime reads a timestamp column scanned as text. The zero time is
// returned for NULL or unparseable values.
func ParseTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s.String); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// ParseNullTime is ParseTime for optional columns.
func ParseNullTime(s sql.NullString) *time.Time {
	t := ParseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}
