package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/migrations"
)

// Supported values of [config.DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// DB wraps *sql.DB with what the repositories need to speak one SQL dialect:
// the placeholder format and an error classifier for its driver.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a connection pool for cfg.Driver, verifies it with a ping and
// applies the embedded migrations unless cfg.SkipMigrations is set.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case DriverPostgres, "":
		db, err = NewConnectPostgres(ctx, cfg, log)
	case DriverMySQL:
		db, err = NewConnectMySQL(ctx, cfg, log)
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.SkipMigrations {
		log.Info().Str("func", "NewDB").Msg("migrations are skipped")
		return db, nil
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewDB").Str("driver", db.driver).Msg("migrations applied")

	return db, nil
}

// newDB wraps an already opened pool.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:          conn,
		driver:      driver,
		placeholder: sq.Question,
		logger:      log,
	}

	switch driver {
	case DriverPostgres:
		db.placeholder = sq.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	case DriverMySQL:
		db.errorClassificator = NewMySQLErrorClassifier()
	default:
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Driver returns the name of the SQL backend behind db.
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver, logger.NewGooseLogger(db.logger))
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// ping verifies a freshly opened pool and closes it on failure.
func ping(ctx context.Context, conn *sql.DB, funcName string, log *logger.Logger) error {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", funcName).Msg("error connecting database (ping)")
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	log.Info().Str("func", funcName).Msg("connected to database successfully")

	return nil
}
