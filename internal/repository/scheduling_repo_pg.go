package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SchedulingRepository interface {
	CreatePending(ctx context.Context, scheduling *domain.Scheduling) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Scheduling, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SchedulingStatus) (*domain.Scheduling, error)
	ListPage(ctx context.Context, userID uuid.UUID, admin bool, page, limit int) ([]domain.Scheduling, int64, error)
}

type PGSchedulingRepository struct {
	db *pgxpool.Pool
}

func NewSchedulingRepository(db *pgxpool.Pool) SchedulingRepository {
	return &PGSchedulingRepository{db: db}
}

const schedulingColumns = `id, customer_id, room_id, starts_at, ends_at, status, created_at, updated_at`

// CreatePending inserts the reservation with status PENDING after re-checking
// for overlaps inside the same transaction. An advisory lock on the room id
// serializes concurrent admissions for one room, so two requests for the same
// slot cannot both pass the scan. A partial unique index on
// (room_id, starts_at) backstops exact-slot duplicates; both paths surface as
// a domain conflict error.
func (r *PGSchedulingRepository) CreatePending(ctx context.Context, scheduling *domain.Scheduling) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, scheduling.RoomID); err != nil {
		return err
	}

	dayStart := scheduling.StartsAt.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var overlapping int
	err = tx.QueryRow(ctx, `SELECT count(*) FROM schedulings
		WHERE room_id=$1 AND status<>$2
		AND starts_at >= $3 AND starts_at < $4
		AND starts_at < $5 AND ends_at > $6`,
		scheduling.RoomID, domain.SchedulingStatusCanceled,
		dayStart, dayEnd,
		scheduling.EndsAt, scheduling.StartsAt).Scan(&overlapping)
	if err != nil {
		return err
	}
	if overlapping > 0 {
		return domain.ConflictError("room is already booked for this time")
	}

	scheduling.Status = domain.SchedulingStatusPending
	err = tx.QueryRow(ctx, `INSERT INTO schedulings (customer_id, room_id, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		scheduling.CustomerID, scheduling.RoomID, scheduling.StartsAt, scheduling.EndsAt, scheduling.Status).
		Scan(&scheduling.ID, &scheduling.CreatedAt, &scheduling.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ConflictError("room is already booked for this time")
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGSchedulingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scheduling, error) {
	row := r.db.QueryRow(ctx, `SELECT `+schedulingColumns+` FROM schedulings WHERE id=$1`, id)
	s, err := scanScheduling(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("scheduling not found")
		}
		return nil, err
	}
	return s, nil
}

func (r *PGSchedulingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SchedulingStatus) (*domain.Scheduling, error) {
	row := r.db.QueryRow(ctx, `UPDATE schedulings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+schedulingColumns, status, id)
	s, err := scanScheduling(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("scheduling not found")
		}
		return nil, err
	}
	return s, nil
}

// ListPage returns one page of reservations ordered by start instant plus the
// total row count. Admins see every reservation, other callers only those of
// their own customers.
func (r *PGSchedulingRepository) ListPage(ctx context.Context, userID uuid.UUID, admin bool, page, limit int) ([]domain.Scheduling, int64, error) {
	offset := (page - 1) * limit

	query := `SELECT ` + schedulingColumns + ` FROM schedulings ORDER BY starts_at ASC LIMIT $1 OFFSET $2`
	countQuery := `SELECT count(*) FROM schedulings`
	args := []any{limit, offset}
	var countArgs []any
	if !admin {
		query = `SELECT ` + schedulingColumns + ` FROM schedulings
			WHERE customer_id IN (SELECT id FROM customers WHERE user_id=$1)
			ORDER BY starts_at ASC LIMIT $2 OFFSET $3`
		countQuery = `SELECT count(*) FROM schedulings WHERE customer_id IN (SELECT id FROM customers WHERE user_id=$1)`
		args = []any{userID, limit, offset}
		countArgs = []any{userID}
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	schedulings := make([]domain.Scheduling, 0)
	for rows.Next() {
		var s domain.Scheduling
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.RoomID, &s.StartsAt, &s.EndsAt, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		schedulings = append(schedulings, s)
	}
	return schedulings, total, rows.Err()
}

func scanScheduling(row pgx.Row) (*domain.Scheduling, error) {
	var s domain.Scheduling
	if err := row.Scan(&s.ID, &s.CustomerID, &s.RoomID, &s.StartsAt, &s.EndsAt, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

var _ SchedulingRepository = (*PGSchedulingRepository)(nil)
