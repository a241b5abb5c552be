package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
	"signalsite/internal/ports/output"
)

var _ output.LeadSink = (*LeadRepository)(nil)

// Scheme prefixes DATABASE_URL values served by this package.
const Scheme = "sqlite:"

const schema = `
CREATE TABLE IF NOT EXISTS master_users_form (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    fname      TEXT NOT NULL,
    lname      TEXT NOT NULL,
    phone      TEXT NOT NULL,
    email      TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS master_users_form_email_key
    ON master_users_form (lower(email));
`

const insertLead = `
INSERT INTO master_users_form (fname, lname, phone, email, created_at)
VALUES (?, ?, ?, ?, ?)`

// LeadRepository implements output.LeadSink on a local SQLite file. It backs
// development setups where no PostgreSQL server is running.
type LeadRepository struct {
	db *sql.DB
}

// IsSQLiteURL reports whether dsn selects this sink.
func IsSQLiteURL(dsn string) bool {
	return strings.HasPrefix(dsn, Scheme)
}

// Open opens the database named by dsn ("sqlite:path" or "sqlite::memory:")
// and creates the schema.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*LeadRepository, error) {
	path := strings.TrimPrefix(strings.TrimPrefix(dsn, Scheme), "//")
	if path == "" {
		return nil, fmt.Errorf("sqlite: empty path in %q", dsn)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}
	logger.Info("sqlite lead sink ready", zap.String("path", path))
	return &LeadRepository{db: db}, nil
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entities.Lead) error {
	createdAt := lead.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertLead,
		lead.FName,
		lead.LName,
		lead.Phone,
		lead.Email,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert lead: %w", classify(err))
	}
	lead.ID = id
	lead.CreatedAt = createdAt
	return nil
}

// Count returns the number of stored leads.
func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM master_users_form`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}

func (r *LeadRepository) Close() error {
	return r.db.Close()
}

func classify(err error) error {
	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateLead, sqliteErr.Error())
	}
	return fmt.Errorf("%w: %w", domain.ErrSinkUnavailable, err)
}
