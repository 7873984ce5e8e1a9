package store

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/migrations"
)

// DB wraps the pooled *sql.DB handle shared by all repositories. Connections
// are acquired per statement from the pool and released on completion on
// every exit path, including failures.
//
// The embedded builder carries the placeholder format of the active backend
// ($N for PostgreSQL, ? for SQLite) so repository queries stay portable.
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	driver  string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the active backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// constraintKind classifies a driver-level error by the schema constraint it
// violated, independent of the backend in use.
type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintForeignKey
)

// classifyConstraint unwraps err as a pgx or sqlite3 driver error and reports
// which constraint, if any, the failed statement violated.
func classifyConstraint(err error) constraintKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return constraintUnique
		case pgerrcode.ForeignKeyViolation:
			return constraintForeignKey
		}
		return constraintNone
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return constraintUnique
		case sqlite3.ErrConstraintForeignKey:
			return constraintForeignKey
		}
	}

	return constraintNone
}
