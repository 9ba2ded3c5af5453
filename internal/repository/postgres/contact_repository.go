// Package postgres provides Postgres-backed repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/repository"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// ContactRepository implements repository.ContactRepository using Postgres.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new Postgres-backed contact repository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// EnsureSchema creates required tables if they don't exist.
func (r *ContactRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    ip TEXT NOT NULL DEFAULT '',
    user_agent TEXT NOT NULL DEFAULT '',
    received_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contact_submissions_received_at ON contact_submissions (received_at DESC);
`
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return err
	}
	logger.Info(ctx, "postgres contact schema ensured")
	return nil
}

// Insert stores a submission. Re-inserting the same ID is a no-op.
func (r *ContactRepository) Insert(ctx context.Context, s domain.ContactSubmission) error {
	const q = `
INSERT INTO contact_submissions (id, name, email, phone, message, ip, user_agent, received_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING
`
	if _, err := r.pool.Exec(ctx, q, s.ID, s.Name, s.Email, s.Phone, s.Message, s.IP, s.UserAgent, s.ReceivedAt); err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// FindByID retrieves a submission by its ID.
func (r *ContactRepository) FindByID(ctx context.Context, id string) (domain.ContactSubmission, error) {
	const q = `
SELECT id, name, email, phone, message, ip, user_agent, received_at
FROM contact_submissions
WHERE id = $1
`
	var s domain.ContactSubmission
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Message, &s.IP, &s.UserAgent, &s.ReceivedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ContactSubmission{}, repository.ErrNotFound
		}
		return domain.ContactSubmission{}, fmt.Errorf("query contact submission: %w", err)
	}
	return s, nil
}

// List returns a page of submissions, newest first.
func (r *ContactRepository) List(ctx context.Context, page, limit int) ([]domain.ContactSubmission, error) {
	const q = `
SELECT id, name, email, phone, message, ip, user_agent, received_at
FROM contact_submissions
ORDER BY received_at DESC
LIMIT $1 OFFSET $2
`
	rows, err := r.pool.Query(ctx, q, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()
	res := make([]domain.ContactSubmission, 0, limit)
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Message, &s.IP, &s.UserAgent, &s.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		res = append(res, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
