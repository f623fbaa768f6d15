package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	List(ctx context.Context) ([]domain.ActivityLog, error)
}

type PGActivityRepository struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) ActivityRepository {
	return &PGActivityRepository{db: db}
}

func (r *PGActivityRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return r.db.QueryRow(ctx, `INSERT INTO logs (type_activity, page, user_id, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		entry.TypeActivity, entry.Page, entry.UserID, entry.CreatedAt).Scan(&entry.ID)
}

func (r *PGActivityRepository) List(ctx context.Context) ([]domain.ActivityLog, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type_activity, page, user_id, created_at FROM logs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ActivityLog, 0)
	for rows.Next() {
		var e domain.ActivityLog
		if err := rows.Scan(&e.ID, &e.TypeActivity, &e.Page, &e.UserID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ ActivityRepository = (*PGActivityRepository)(nil)
