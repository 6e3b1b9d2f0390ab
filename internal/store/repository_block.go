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

// blockRepository is the SQL-backed implementation of [BlockRepository].
// The blocked_ips table keys on the source address; a block "expires" purely
// by the unblock_at comparison in each query, so expired rows linger until
// replaced or purged.
type blockRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlockRepository constructs a [BlockRepository] backed by the provided
// database connection and logger.
func NewBlockRepository(db *DB, logger *logger.Logger) BlockRepository {
	logger.Debug().Msg("creating block repository")
	return &blockRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert installs the block. An existing row for the same source address is
// overwritten, resetting blocked_at, unblock_at, and reason.
func (r *blockRepository) Upsert(ctx context.Context, block models.BlockedIP) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertBlock,
		block.IPAddress, block.BlockedAt, block.UnblockAt, block.Reason)
	if err != nil {
		log.Err(err).Str("func", "*blockRepository.Upsert").Str("ip", block.IPAddress).Msg("error: upserting block")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindActive returns the block for ipAddress still applying at now, or
// [ErrNoBlockWasFound] when the source is clear (no row, or only an expired
// one).
func (r *blockRepository) FindActive(ctx context.Context, ipAddress string, now time.Time) (models.BlockedIP, error) {
	log := logger.FromContext(ctx)

	var block models.BlockedIP
	err := r.db.QueryRowContext(ctx, findActiveBlock, ipAddress, now).
		Scan(&block.ID, &block.IPAddress, &block.BlockedAt, &block.UnblockAt, &block.Reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BlockedIP{}, ErrNoBlockWasFound
		}
		log.Err(err).Str("func", "*blockRepository.FindActive").Str("ip", ipAddress).Msg("error: scanning block")
		return models.BlockedIP{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return block, nil
}

// ListActive returns every block still applying at now, newest first.
func (r *blockRepository) ListActive(ctx context.Context, now time.Time) ([]models.BlockedIP, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listActiveBlocks, now)
	if err != nil {
		log.Err(err).Str("func", "*blockRepository.ListActive").Msg("error: querying blocks")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var blocks []models.BlockedIP
	for rows.Next() {
		var block models.BlockedIP
		if err = rows.Scan(&block.ID, &block.IPAddress, &block.BlockedAt, &block.UnblockAt, &block.Reason); err != nil {
			log.Err(err).Str("func", "*blockRepository.ListActive").Msg("error: scanning block row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		blocks = append(blocks, block)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blocks, nil
}

// ClearAll removes every block record. Administrative purge; there is no
// routine sweeper.
func (r *blockRepository) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearBlocks); err != nil {
		log.Err(err).Str("func", "*blockRepository.ClearAll").Msg("error: clearing blocks")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// CountActive returns the number of blocks still applying at now.
func (r *blockRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, countActiveBlocks, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
