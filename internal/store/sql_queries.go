package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/avdeyev/authgate/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, salt, role, status, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, username, email, password_hash, salt, role, status, created_at, last_login;`

	findUserByUsername = `SELECT id, username, email, password_hash, salt, role, status, created_at, last_login
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT id, username, email, password_hash, salt, role, status, created_at, last_login
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, salt, role, status, created_at, last_login
    FROM users
    WHERE id = $1;`

	updateLastLogin = `UPDATE users
    SET last_login = $1
    WHERE id = $2;`

	listUsers = `SELECT id, username, email, password_hash, salt, role, status, created_at, last_login
    FROM users
    ORDER BY created_at DESC;`

	countUsers         = `SELECT COUNT(*) FROM users;`
	countUsersByRole   = `SELECT COUNT(*) FROM users WHERE role = $1;`
	countUsersByStatus = `SELECT COUNT(*) FROM users WHERE status = $1;`

	insertAttempt = `INSERT INTO login_attempts (ip_address, attempted_at, success)
    VALUES ($1, $2, $3);`

	countRecentFailures = `SELECT COUNT(*) FROM login_attempts
    WHERE ip_address = $1
      AND success = FALSE
      AND attempted_at > $2;`

	countAttemptsByOutcome = `SELECT COUNT(*) FROM login_attempts WHERE success = $1;`

	upsertBlock = `INSERT INTO blocked_ips (ip_address, blocked_at, unblock_at, reason)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (ip_address) DO UPDATE
    SET blocked_at = excluded.blocked_at,
        unblock_at = excluded.unblock_at,
        reason     = excluded.reason;`

	findActiveBlock = `SELECT id, ip_address, blocked_at, unblock_at, reason
    FROM blocked_ips
    WHERE ip_address = $1 AND unblock_at > $2;`

	listActiveBlocks = `SELECT id, ip_address, blocked_at, unblock_at, reason
    FROM blocked_ips
    WHERE unblock_at > $1
    ORDER BY blocked_at DESC;`

	clearBlocks = `DELETE FROM blocked_ips;`

	countActiveBlocks = `SELECT COUNT(*) FROM blocked_ips WHERE unblock_at > $1;`
)

// buildUpdateUserQuery turns a [models.UserPatch] into a parameterised UPDATE
// statement. Column names are fixed at compile time and values only ever
// travel as bind arguments; an empty patch is rejected before touching the
// database.
func buildUpdateUserQuery(userID int64, patch models.UserPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty user patch", ErrBuildingSQLQuery)
	}

	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)

	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.Role != nil {
		builder = builder.Set("role", *patch.Role)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.PasswordHash != nil {
		builder = builder.Set("password_hash", *patch.PasswordHash)
	}
	if patch.Salt != nil {
		builder = builder.Set("salt", *patch.Salt)
	}

	query, args, err := builder.Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
