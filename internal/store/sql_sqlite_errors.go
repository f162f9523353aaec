package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var sqliteConstraintCodes = map[sqlite3.ErrNoExtended]ErrorClassification{
	sqlite3.ErrConstraintUnique:     UniqueViolation,
	sqlite3.ErrConstraintPrimaryKey: UniqueViolation,
	sqlite3.ErrConstraintForeignKey: ForeignKeyViolation,
	sqlite3.ErrConstraintNotNull:    NotNullViolation,
	sqlite3.ErrConstraintCheck:      CheckViolation,
}

// SQLiteErrorClassifier reads the extended result code of go-sqlite3
// constraint errors.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) || liteErr.Code != sqlite3.ErrConstraint {
		return Unclassified
	}

	return sqliteConstraintCodes[liteErr.ExtendedCode]
}
