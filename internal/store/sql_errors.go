package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// uniqueViolationColumn inspects a driver-level error and, when it is a
// unique-constraint violation on the users table, reports which column
// collided ("username" or "email").
//
// PostgreSQL exposes the violated constraint name on *pgconn.PgError;
// SQLite only reports the column inside the error message
// ("UNIQUE constraint failed: users.username").
func uniqueViolationColumn(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgerrcode.UniqueViolation {
			return "", false
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return "email", true
		}
		if strings.Contains(pgErr.ConstraintName, "username") {
			return "username", true
		}
		return "", true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique &&
			sqliteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
			return "", false
		}
		if strings.Contains(sqliteErr.Error(), "users.email") {
			return "email", true
		}
		if strings.Contains(sqliteErr.Error(), "users.username") {
			return "username", true
		}
		return "", true
	}

	return "", false
}

// userUniqueViolation maps a unique-constraint violation on the users table
// to the matching sentinel error, or returns false when err is not a unique
// violation.
func userUniqueViolation(err error) (error, bool) {
	column, ok := uniqueViolationColumn(err)
	if !ok {
		return nil, false
	}

	switch column {
	case "email":
		return ErrEmailAlreadyExists, true
	default:
		// unnamed constraints fall back to the username error, the first
		// uniqueness rule checked at registration
		return ErrUsernameAlreadyExists, true
	}
}
