package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/marketplace-service/internal/domain"
)

// WorkerRepository defines persistence access for courier profiles.
type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	List(ctx context.Context) ([]domain.Worker, error)
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	Delete(ctx context.Context, id string) error
}

type workerRepository struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository returns a Postgres-backed implementation.
func NewWorkerRepository(pool *pgxpool.Pool) WorkerRepository {
	return &workerRepository{pool: pool}
}

func (r *workerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	if worker.ID == "" {
		worker.ID = NewWorkerID()
	}

	const query = `
        INSERT INTO workers (id, name, phone, vehicle, email, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		worker.ID,
		worker.Name,
		worker.Phone,
		worker.Vehicle,
		worker.Email,
		worker.ImageURL,
	).Scan(&worker.CreatedAt, &worker.UpdatedAt)
}

func (r *workerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	const query = `
        SELECT id, name, phone, vehicle, email, image_url, created_at, updated_at
        FROM workers ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := []domain.Worker{}
	for rows.Next() {
		var worker domain.Worker
		if err := rows.Scan(
			&worker.ID,
			&worker.Name,
			&worker.Phone,
			&worker.Vehicle,
			&worker.Email,
			&worker.ImageURL,
			&worker.CreatedAt,
			&worker.UpdatedAt,
		); err != nil {
			return nil, err
		}
		workers = append(workers, worker)
	}
	return workers, rows.Err()
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	const query = `
        SELECT id, name, phone, vehicle, email, image_url, created_at, updated_at
        FROM workers WHERE id=$1`

	var worker domain.Worker
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&worker.ID,
		&worker.Name,
		&worker.Phone,
		&worker.Vehicle,
		&worker.Email,
		&worker.ImageURL,
		&worker.CreatedAt,
		&worker.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	const query = `
        UPDATE workers SET name=$1, phone=$2, vehicle=$3, email=$4, image_url=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		worker.Name,
		worker.Phone,
		worker.Vehicle,
		worker.Email,
		worker.ImageURL,
		worker.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workerRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM workers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
