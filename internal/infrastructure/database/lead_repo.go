package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
	"signalsite/internal/ports/output"
)

var _ output.LeadSink = (*LeadRepository)(nil)

// DBTX is the subset of pgxpool.Pool the repository needs.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const insertLead = `
INSERT INTO master_users_form (fname, lname, phone, email, created_at)
VALUES ($1, $2, $3, $4, COALESCE($5, now()))
RETURNING id, created_at`

const uniqueViolation = "23505"

// LeadRepository implements output.LeadSink on PostgreSQL.
type LeadRepository struct {
	db DBTX
}

// NewLeadRepository creates a LeadRepository.
func NewLeadRepository(db DBTX) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entities.Lead) error {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, insertLead,
		lead.FName,
		lead.LName,
		lead.Phone,
		lead.Email,
		timeToPgtypeTimestamptz(lead.CreatedAt),
	).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("insert lead: %w", classify(err))
	}
	lead.ID = id
	lead.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateLead, pgErr.ConstraintName)
	}
	return fmt.Errorf("%w: %w", domain.ErrSinkUnavailable, err)
}
