package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/authgate/internal/config"
	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/store"
	"github.com/avdeyev/authgate/models"
)

// blockReason is the classification written into every automatically
// installed block.
const blockReason = "Too many failed login attempts"

// lockoutService is the concrete implementation of [LockoutService].
//
// A source is Blocked while an active row exists in the block store and
// Clear otherwise. The transition back to Clear needs no write: every
// decision compares unblock_at against now, so a block expires the instant
// the clock passes it.
type lockoutService struct {
	// attempts is the append-only ledger of evaluated login attempts.
	attempts store.AttemptRepository

	// blocks stores at most one block row per source address.
	blocks store.BlockRepository

	// threshold is the number of failures inside window at which a source
	// gets blocked.
	threshold int

	// window is the sliding interval, ending at now, over which failures
	// are counted.
	window time.Duration

	// blockDuration is how long an installed block lasts.
	blockDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewLockoutService constructs a [LockoutService] with the policy knobs from
// cfg. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewLockoutService(attempts store.AttemptRepository, blocks store.BlockRepository, cfg config.Lockout, logger *logger.Logger) LockoutService {
	return &lockoutService{
		attempts:      attempts,
		blocks:        blocks,
		threshold:     cfg.FailureThreshold,
		window:        cfg.FailureWindow,
		blockDuration: cfg.BlockDuration,
		logger:        logger,
	}
}

// IsBlocked implements [LockoutService]. A missing or expired block row
// means the source is Clear; storage failures propagate so the caller never
// mistakes an outage for a clear source.
func (l *lockoutService) IsBlocked(ctx context.Context, source string, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	_, err := l.blocks.FindActive(ctx, source, now)
	if err != nil {
		if errors.Is(err, store.ErrNoBlockWasFound) {
			return false, nil
		}
		log.Err(err).Str("source", source).Msg("block lookup failed")
		return false, fmt.Errorf("block lookup failed: %w", err)
	}

	return true, nil
}

// TooManyFailures implements [LockoutService]. It counts failed attempts
// from source strictly inside (now-window, now] and compares against the
// threshold.
func (l *lockoutService) TooManyFailures(ctx context.Context, source string, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	count, err := l.attempts.CountRecentFailures(ctx, source, now.Add(-l.window))
	if err != nil {
		log.Err(err).Str("source", source).Msg("failure count failed")
		return false, fmt.Errorf("failure count failed: %w", err)
	}

	return count >= l.threshold, nil
}

// InstallBlock implements [LockoutService]. Replacing an existing row resets
// unblock_at, so a source that keeps attacking keeps pushing its unblock
// time forward.
func (l *lockoutService) InstallBlock(ctx context.Context, source string, now time.Time) error {
	log := logger.FromContext(ctx)

	block := models.BlockedIP{
		IPAddress: source,
		BlockedAt: now,
		UnblockAt: now.Add(l.blockDuration),
		Reason:    blockReason,
	}

	if err := l.blocks.Upsert(ctx, block); err != nil {
		log.Err(err).Str("source", source).Msg("block installation failed")
		return fmt.Errorf("block installation failed: %w", err)
	}

	log.Warn().Str("source", source).Time("unblock_at", block.UnblockAt).Msg("source blocked")
	return nil
}

// RecordAttempt implements [LockoutService]. The ledger write is
// fire-and-forget: a persistence failure is logged and swallowed, it must
// not abort the login that triggered it.
func (l *lockoutService) RecordAttempt(ctx context.Context, source string, success bool, now time.Time) {
	log := logger.FromContext(ctx)

	attempt := models.LoginAttempt{
		IPAddress:   source,
		AttemptedAt: now,
		Success:     success,
	}

	if err := l.attempts.RecordAttempt(ctx, attempt); err != nil {
		log.Err(err).Str("source", source).Bool("success", success).Msg("recording login attempt failed")
	}
}
