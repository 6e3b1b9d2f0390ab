package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/models"
)

func newTestBlockRepo(t *testing.T) (*blockRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &blockRepository{
		db:     &DB{DB: db, driver: DriverPostgres, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func blockColumns() []string {
	return []string{"id", "ip_address", "blocked_at", "unblock_at", "reason"}
}

func TestUpsertBlock(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, db := newTestBlockRepo(t)
		defer db.Close()

		now := time.Now()
		unblock := now.Add(24 * time.Hour)

		mock.ExpectExec("INSERT INTO blocked_ips").
			WithArgs("203.0.113.9", now, unblock, "Too many failed login attempts").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Upsert(context.Background(), models.BlockedIP{
			IPAddress: "203.0.113.9",
			BlockedAt: now,
			UnblockAt: unblock,
			Reason:    "Too many failed login attempts",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exec failure", func(t *testing.T) {
		repo, mock, db := newTestBlockRepo(t)
		defer db.Close()

		mock.ExpectExec("INSERT INTO blocked_ips").
			WillReturnError(errors.New("disk full"))

		err := repo.Upsert(context.Background(), models.BlockedIP{IPAddress: "203.0.113.9"})
		if !errors.Is(err, ErrExecutingStatement) {
			t.Fatalf("expected ErrExecutingStatement, got %v", err)
		}
	})
}

func TestFindActiveBlock(t *testing.T) {
	t.Run("active block found", func(t *testing.T) {
		repo, mock, db := newTestBlockRepo(t)
		defer db.Close()

		now := time.Now()
		unblock := now.Add(time.Hour)

		rows := sqlmock.NewRows(blockColumns()).
			AddRow(1, "203.0.113.9", now.Add(-time.Hour), unblock, "Too many failed login attempts")

		mock.ExpectQuery("SELECT (.+) FROM blocked_ips").
			WithArgs("203.0.113.9", now).
			WillReturnRows(rows)

		block, err := repo.FindActive(context.Background(), "203.0.113.9", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if block.IPAddress != "203.0.113.9" {
			t.Errorf("expected ip 203.0.113.9, got %s", block.IPAddress)
		}
	})

	t.Run("no active block", func(t *testing.T) {
		repo, mock, db := newTestBlockRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM blocked_ips").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindActive(context.Background(), "203.0.113.9", time.Now())
		if !errors.Is(err, ErrNoBlockWasFound) {
			t.Fatalf("expected ErrNoBlockWasFound, got %v", err)
		}
	})
}

func TestListActiveBlocks(t *testing.T) {
	repo, mock, db := newTestBlockRepo(t)
	defer db.Close()

	now := time.Now()

	rows := sqlmock.NewRows(blockColumns()).
		AddRow(2, "203.0.113.9", now, now.Add(time.Hour), "Too many failed login attempts").
		AddRow(1, "198.51.100.3", now.Add(-time.Hour), now.Add(23*time.Hour), "Too many failed login attempts")

	mock.ExpectQuery("SELECT (.+) FROM blocked_ips").
		WithArgs(now).
		WillReturnRows(rows)

	blocks, err := repo.ListActive(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].IPAddress != "203.0.113.9" {
		t.Errorf("expected newest block first, got %s", blocks[0].IPAddress)
	}
}

func TestClearAllBlocks(t *testing.T) {
	repo, mock, db := newTestBlockRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM blocked_ips").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.ClearAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCountActiveBlocks(t *testing.T) {
	repo, mock, db := newTestBlockRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActive(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2, got %d", count)
	}
}
