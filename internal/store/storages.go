package store

import (
	"context"
	"fmt"

	"github.com/avdeyev/authgate/internal/config"
	"github.com/avdeyev/authgate/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
// It is built once at startup and injected into the service layer; no
// package-level database state exists anywhere in the application.
type Storages struct {
	DB                *DB
	UserRepository    UserRepository
	AttemptRepository AttemptRepository
	BlockRepository   BlockRepository
}

// NewStorages opens the configured database backend, runs schema setup, and
// wires all repositories on top of the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		AttemptRepository: NewAttemptRepository(db, log),
		BlockRepository:   NewBlockRepository(db, log),
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}
