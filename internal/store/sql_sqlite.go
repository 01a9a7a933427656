package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
)

// DriverSQLite is the database/sql driver name of the mattn sqlite3 driver.
const DriverSQLite = "sqlite3"

// NewConnectSQLite opens and pings an embedded sqlite database for
// cfg.DatabaseURL ("sqlite://<path>" or "sqlite://:memory:"). The connection
// pool is capped at a single connection: an in-memory sqlite database exists
// per connection, and file databases avoid write contention this way.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(DriverSQLite, sqlitePath(cfg.DatabaseURL))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		driver:  DriverSQLite,
		echo:    cfg.Echo,
		logger:  log,
	}

	return db, nil
}
