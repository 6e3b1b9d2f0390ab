package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and updates against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. The uniqueness of username
// and email is guaranteed by constraints: when two registrations race, the
// second INSERT fails with a unique violation and is mapped to
// [ErrUsernameAlreadyExists] or [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash, user.Salt, user.Role, user.Status, user.CreatedAt)

	created, err := scanUser(row)
	if err != nil {
		if dupErr, ok := userUniqueViolation(err); ok {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("uniqueness violated")
			return models.User{}, dupErr
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByEmail retrieves the account whose email matches exactly.
// Error semantics are identical to [userRepository.FindUserByUsername].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the account with the given primary key.
// Error semantics are identical to [userRepository.FindUserByUsername].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, key any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, key)

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateLastLogin sets the account's last_login column to now. The write is
// idempotent: the resulting state is "last_login = now" regardless of the
// prior value.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, now time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateLastLogin, now, userID); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Int64("id", userID).Msg("error: updating last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateUser applies a structured partial update built by
// [buildUpdateUserQuery]. Only fixed column names reach the statement;
// values travel exclusively as bind arguments.
//
// Error handling:
//   - empty patch → wrapped [ErrBuildingSQLQuery].
//   - zero affected rows → [ErrNoUserWasFound].
//   - unique violation on email → [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, patch)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dupErr, ok := userUniqueViolation(err); ok {
			return dupErr
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", userID).Msg("error: updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ListUsers returns every account, newest first.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// CountUsers returns the total number of accounts.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, countUsers)
}

// CountUsersByRole returns the number of accounts with the given role.
func (r *userRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	return r.count(ctx, countUsersByRole, role)
}

// CountUsersByStatus returns the number of accounts with the given status.
func (r *userRepository) CountUsersByStatus(ctx context.Context, status string) (int64, error) {
	return r.count(ctx, countUsersByStatus, status)
}

func (r *userRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	return n, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		lastLogin sql.NullTime
	)

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Salt,
		&user.Role, &user.Status, &user.CreatedAt, &lastLogin)
	if err != nil {
		return models.User{}, err
	}

	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}
