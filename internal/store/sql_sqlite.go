package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
)

const sqliteMemory = ":memory:"

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite", sqliteDSN(cfg))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// a single writer; also keeps one shared :memory: database per pool
	conn.SetMaxOpenConns(1)

	if err = ping(ctx, conn, "NewConnectSQLite", log); err != nil {
		return nil, err
	}

	return newDB(conn, DriverSQLite, log), nil
}

// sqliteDSN returns cfg.DSN as is, or treats cfg.Name as a file path and
// enables foreign keys and a busy timeout on it.
func sqliteDSN(cfg config.DB) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	if cfg.Name == sqliteMemory || strings.HasPrefix(cfg.Name, "file:") {
		return cfg.Name
	}

	return "file:" + cfg.Name + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
