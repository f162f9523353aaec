package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// ErrorClassification describes what kind of constraint or failure a driver
// error represents, independently of the database in use.
type ErrorClassification int

const (
	// Unclassified covers every error without special handling.
	Unclassified ErrorClassification = iota

	// UniqueViolation is a UNIQUE or PRIMARY KEY constraint failure.
	UniqueViolation

	// ForeignKeyViolation is a failed REFERENCES check.
	ForeignKeyViolation

	NotNullViolation
	CheckViolation
)

var classificationNames = [...]string{"unclassified", "unique violation", "foreign key violation", "not null violation", "check violation"}

func (c ErrorClassification) String() string {
	if c < 0 || int(c) >= len(classificationNames) {
		return "unknown"
	}

	return classificationNames[c]
}

// DB wraps a *sql.DB together with the dialect-specific pieces the
// repositories need: a squirrel builder with the right placeholder format
// and an error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// Dialect returns the name of the SQL dialect ("postgres" or "sqlite").
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}

	return db.errorClassificator.Classify(err)
}

// openAndPing opens driver/dsn, lets tune adjust the pool and checks that
// the database answers. The pool is closed again on any failure.
func openAndPing(ctx context.Context, driver, dsn string, log *logger.Logger, tune func(*sql.DB)) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", driver, err)
	}

	tune(conn)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}

	log.Info().Str("driver", driver).Msg("connected to database")
	return conn, nil
}
