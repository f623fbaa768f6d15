package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, userID uuid.UUID, admin bool) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

const customerColumns = `id, user_id, cep, street, number, complement, neighboor, city, state, created_at, updated_at`

func (r *PGCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.QueryRow(ctx, `INSERT INTO customers (user_id, cep, street, number, complement, neighboor, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		customer.UserID, customer.CEP, customer.Street, customer.Number, customer.Complement, customer.Neighboor, customer.City, customer.State).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *PGCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id=$1`, id)
	return scanCustomer(row)
}

func (r *PGCustomerRepository) List(ctx context.Context, userID uuid.UUID, admin bool) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at ASC`
	var args []any
	if !admin {
		query = `SELECT ` + customerColumns + ` FROM customers WHERE user_id=$1 ORDER BY created_at ASC`
		args = append(args, userID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.CEP, &c.Street, &c.Number, &c.Complement, &c.Neighboor, &c.City, &c.State, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PGCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	err := r.db.QueryRow(ctx, `UPDATE customers SET cep=$1, street=$2, number=$3, complement=$4, neighboor=$5, city=$6, state=$7, updated_at=now()
		WHERE id=$8 RETURNING updated_at`,
		customer.CEP, customer.Street, customer.Number, customer.Complement, customer.Neighboor, customer.City, customer.State, customer.ID).
		Scan(&customer.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFoundError("customer not found")
	}
	return err
}

func (r *PGCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundError("customer not found")
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.UserID, &c.CEP, &c.Street, &c.Number, &c.Complement, &c.Neighboor, &c.City, &c.State, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("customer not found")
		}
		return nil, err
	}
	return &c, nil
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
