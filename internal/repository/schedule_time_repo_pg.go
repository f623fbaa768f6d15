package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleTimeRepository interface {
	Create(ctx context.Context, window *domain.ScheduleTime) error
	Update(ctx context.Context, window *domain.ScheduleTime) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleTime, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.ScheduleTime, error)
	List(ctx context.Context, roomID, userID uuid.UUID, admin bool) ([]domain.ScheduleTime, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGScheduleTimeRepository struct {
	db *pgxpool.Pool
}

func NewScheduleTimeRepository(db *pgxpool.Pool) ScheduleTimeRepository {
	return &PGScheduleTimeRepository{db: db}
}

const scheduleTimeColumns = `id, room_id, user_id, start_time, end_time, block_minutes, created_at, updated_at`

func (r *PGScheduleTimeRepository) Create(ctx context.Context, window *domain.ScheduleTime) error {
	return r.db.QueryRow(ctx, `INSERT INTO schedule_times (room_id, user_id, start_time, end_time, block_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		window.RoomID, window.UserID, window.StartTime, window.EndTime, window.BlockMinutes).
		Scan(&window.ID, &window.CreatedAt, &window.UpdatedAt)
}

func (r *PGScheduleTimeRepository) Update(ctx context.Context, window *domain.ScheduleTime) error {
	err := r.db.QueryRow(ctx, `UPDATE schedule_times SET start_time=$1, end_time=$2, block_minutes=$3, updated_at=now()
		WHERE id=$4 RETURNING updated_at`,
		window.StartTime, window.EndTime, window.BlockMinutes, window.ID).Scan(&window.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFoundError("schedule time not found")
	}
	return err
}

func (r *PGScheduleTimeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleTime, error) {
	row := r.db.QueryRow(ctx, `SELECT `+scheduleTimeColumns+` FROM schedule_times WHERE id=$1`, id)
	var w domain.ScheduleTime
	if err := row.Scan(&w.ID, &w.RoomID, &w.UserID, &w.StartTime, &w.EndTime, &w.BlockMinutes, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("schedule time not found")
		}
		return nil, err
	}
	return &w, nil
}

// ListByRoom returns the room's windows ordered by start time; the admission
// engine resolves first-match against this order.
func (r *PGScheduleTimeRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.ScheduleTime, error) {
	rows, err := r.db.Query(ctx, `SELECT `+scheduleTimeColumns+` FROM schedule_times WHERE room_id=$1 ORDER BY start_time ASC`, roomID)
	if err != nil {
		return nil, err
	}
	return collectScheduleTimes(rows)
}

func (r *PGScheduleTimeRepository) List(ctx context.Context, roomID, userID uuid.UUID, admin bool) ([]domain.ScheduleTime, error) {
	query := `SELECT ` + scheduleTimeColumns + ` FROM schedule_times`
	var conds []string
	var args []any
	if roomID != uuid.Nil {
		args = append(args, roomID)
		conds = append(conds, `room_id=$1`)
	}
	if !admin {
		args = append(args, userID)
		if len(args) == 2 {
			conds = append(conds, `user_id=$2`)
		} else {
			conds = append(conds, `user_id=$1`)
		}
	}
	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	query += ` ORDER BY start_time ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectScheduleTimes(rows)
}

func (r *PGScheduleTimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM schedule_times WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundError("schedule time not found")
	}
	return nil
}

func collectScheduleTimes(rows pgx.Rows) ([]domain.ScheduleTime, error) {
	defer rows.Close()
	windows := make([]domain.ScheduleTime, 0)
	for rows.Next() {
		var w domain.ScheduleTime
		if err := rows.Scan(&w.ID, &w.RoomID, &w.UserID, &w.StartTime, &w.EndTime, &w.BlockMinutes, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

var _ ScheduleTimeRepository = (*PGScheduleTimeRepository)(nil)
