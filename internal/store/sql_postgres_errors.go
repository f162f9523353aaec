package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresConstraintCodes maps SQLSTATE class 23 codes to classifications.
var postgresConstraintCodes = map[string]ErrorClassification{
	pgerrcode.UniqueViolation:     UniqueViolation,
	pgerrcode.ForeignKeyViolation: ForeignKeyViolation,
	pgerrcode.NotNullViolation:    NotNullViolation,
	pgerrcode.CheckViolation:      CheckViolation,
}

// PostgresErrorClassifier reads the SQLSTATE of *pgconn.PgError values
// returned through pgx's database/sql driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || !pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return Unclassified
	}

	return postgresConstraintCodes[pgErr.Code]
}
