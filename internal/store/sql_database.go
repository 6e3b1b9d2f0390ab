package store

import (
	"database/sql"

	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/migrations"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB wraps a database/sql handle together with the driver it was opened
// with. The driver determines how schema setup runs and how driver-level
// errors are classified.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Driver returns the driver identifier the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate brings the database schema up to date. The PostgreSQL backend runs
// the embedded goose migrations; the SQLite backend creates its tables in
// place, the way the file-based deployment has always bootstrapped itself.
func (db *DB) Migrate() error {
	if db.driver == DriverPostgres {
		return migrations.Migrate(db.DB)
	}
	return db.bootstrapSQLite()
}
