package store

import (
	"context"
	"fmt"
	"time"

	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/models"
)

// attemptRepository is the SQL-backed implementation of [AttemptRepository].
// The login_attempts table is append-only: rows are inserted once and only
// ever read back through window counts and statistics.
type attemptRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAttemptRepository constructs an [AttemptRepository] backed by the
// provided database connection and logger.
func NewAttemptRepository(db *DB, logger *logger.Logger) AttemptRepository {
	logger.Debug().Msg("creating login attempt repository")
	return &attemptRepository{
		db:     db,
		logger: logger,
	}
}

// RecordAttempt appends one ledger row.
func (r *attemptRepository) RecordAttempt(ctx context.Context, attempt models.LoginAttempt) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertAttempt,
		attempt.IPAddress, attempt.AttemptedAt, attempt.Success)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.RecordAttempt").Str("ip", attempt.IPAddress).Msg("error: inserting login attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// CountRecentFailures returns the number of failed attempts from ipAddress
// with a timestamp strictly after since.
func (r *attemptRepository) CountRecentFailures(ctx context.Context, ipAddress string, since time.Time) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := r.db.QueryRowContext(ctx, countRecentFailures, ipAddress, since).Scan(&count)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.CountRecentFailures").Str("ip", ipAddress).Msg("error: counting failures")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// CountByOutcome returns the all-time number of attempts with the given
// outcome.
func (r *attemptRepository) CountByOutcome(ctx context.Context, success bool) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, countAttemptsByOutcome, success).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
