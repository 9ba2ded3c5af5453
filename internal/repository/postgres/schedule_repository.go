package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/repository"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// ScheduleRepository implements repository.ScheduleRepository using Postgres.
// Rows are keyed by Monday-first day index.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository creates a new Postgres-backed schedule repository.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// EnsureSchema creates the office_hours table and seeds it with seed when it is empty.
func (r *ScheduleRepository) EnsureSchema(ctx context.Context, seed []domain.ScheduleEntry) error {
	const schema = `
CREATE TABLE IF NOT EXISTS office_hours (
    day_index SMALLINT PRIMARY KEY CHECK (day_index BETWEEN 0 AND 6),
    day TEXT NOT NULL,
    hours TEXT NOT NULL,
    is_open BOOLEAN NOT NULL
);
`
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return err
	}
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM office_hours`).Scan(&n); err != nil {
		return fmt.Errorf("count office hours: %w", err)
	}
	if n == 0 && len(seed) > 0 {
		if err := r.Save(ctx, seed); err != nil {
			return fmt.Errorf("seed office hours: %w", err)
		}
		logger.Info(ctx, "office hours seeded with %d entries", len(seed))
	}
	logger.Info(ctx, "postgres schedule schema ensured")
	return nil
}

// Week returns the stored table ordered Monday first.
func (r *ScheduleRepository) Week(ctx context.Context) ([]domain.ScheduleEntry, error) {
	const q = `SELECT day, hours, is_open FROM office_hours ORDER BY day_index`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query office hours: %w", err)
	}
	defer rows.Close()
	week := make([]domain.ScheduleEntry, 0, 7)
	for rows.Next() {
		var e domain.ScheduleEntry
		if err := rows.Scan(&e.Day, &e.Hours, &e.Open); err != nil {
			return nil, fmt.Errorf("scan office hours: %w", err)
		}
		week = append(week, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	if len(week) == 0 {
		return nil, repository.ErrNotFound
	}
	return week, nil
}

// Save replaces the whole table in one transaction.
func (r *ScheduleRepository) Save(ctx context.Context, week []domain.ScheduleEntry) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM office_hours`); err != nil {
			return fmt.Errorf("clear office hours: %w", err)
		}
		const q = `INSERT INTO office_hours (day_index, day, hours, is_open) VALUES ($1, $2, $3, $4)`
		for i, e := range week {
			if _, err := tx.Exec(ctx, q, i, e.Day, e.Hours, e.Open); err != nil {
				return fmt.Errorf("insert office hours day %d: %w", i, err)
			}
		}
		return nil
	})
}

var _ repository.ScheduleRepository = (*ScheduleRepository)(nil)
