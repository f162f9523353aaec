// Package migrations embeds the goose SQL migrations for every supported
// database dialect and applies them at server startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported dialects; the values match config.DriverPostgres and config.DriverSQLite.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var (
	errNilDB              = errors.New("migration error: db is nil")
	errUnsupportedDialect = errors.New("migration error: unsupported dialect")
)

// gooseDialects maps a dialect to the goose dialect name and the embedded
// directory holding its migrations.
var gooseDialects = map[string]struct {
	goose string
	dir   string
}{
	DialectPostgres: {goose: "pgx", dir: "postgres"},
	DialectSQLite:   {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations of the given dialect to db.
// goose output is written through log.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errNilDB
	}

	target, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", errUnsupportedDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(target.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msgf(format, v...)
}

// Fatalf is called by goose on unrecoverable errors; goose returns the error
// to Migrate as well, so it is logged instead of exiting the process.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("component", "goose").Msgf(format, v...)
}
