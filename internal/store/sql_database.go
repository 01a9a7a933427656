package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/migrations"
)

// DB wraps *sql.DB with the driver-specific pieces the repositories need:
// a squirrel statement builder with the right placeholder format, the driver
// name for migrations, and the echo flag for per-query debug logging.
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	driver  string
	echo    bool
	logger  *logger.Logger
}

// NewConnect opens a database handle for cfg.DatabaseURL, picking the driver
// from the URL scheme: "sqlite://" (or "sqlite3://") opens an embedded sqlite
// database, anything else is treated as a PostgreSQL DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isSQLiteURL(cfg.DatabaseURL) {
		return NewConnectSQLite(ctx, cfg, log)
	}

	return NewConnectPostgres(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for this handle's dialect.
// Already-applied migrations are skipped, so calling it on every startup is
// safe.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func isSQLiteURL(databaseURL string) bool {
	return strings.HasPrefix(databaseURL, "sqlite")
}

// sqlitePath strips the URL scheme from a sqlite database URL, leaving the
// file path (or ":memory:").
func sqlitePath(databaseURL string) string {
	path := strings.TrimPrefix(databaseURL, "sqlite3://")
	path = strings.TrimPrefix(path, "sqlite://")
	return path
}
