package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func TestUserUniqueViolation(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedErr error
		isViolation bool
	}{
		{
			name:        "postgres username constraint",
			err:         &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"},
			expectedErr: ErrUsernameAlreadyExists,
			isViolation: true,
		},
		{
			name:        "postgres email constraint",
			err:         &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"},
			expectedErr: ErrEmailAlreadyExists,
			isViolation: true,
		},
		{
			name:        "postgres unnamed constraint falls back to username",
			err:         &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectedErr: ErrUsernameAlreadyExists,
			isViolation: true,
		},
		{
			name:        "postgres non-unique error",
			err:         &pgconn.PgError{Code: pgerrcode.NotNullViolation},
			isViolation: false,
		},
		{
			name: "sqlite username collision",
			err: sqlite3.Error{
				Code:         sqlite3.ErrConstraint,
				ExtendedCode: sqlite3.ErrConstraintUnique,
			},
			expectedErr: ErrUsernameAlreadyExists,
			isViolation: true,
		},
		{
			name:        "plain error",
			err:         errors.New("db network error"),
			isViolation: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped, ok := userUniqueViolation(tt.err)
			if ok != tt.isViolation {
				t.Fatalf("expected isViolation=%v, got %v", tt.isViolation, ok)
			}
			if tt.isViolation && !errors.Is(mapped, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, mapped)
			}
		})
	}
}
