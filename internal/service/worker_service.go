package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/repository"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

// WorkerService manages courier profiles.
type WorkerService struct {
	workers repository.WorkerRepository
}

// NewWorkerService builds the service.
func NewWorkerService(workers repository.WorkerRepository) *WorkerService {
	return &WorkerService{workers: workers}
}

// CreateWorker persists a courier profile.
func (s *WorkerService) CreateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	if worker.Name == "" {
		return nil, apperrors.NewValidationError("worker name is required", nil)
	}
	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, apperrors.MapError(err)
	}
	return worker, nil
}

// ListWorkers returns all courier profiles.
func (s *WorkerService) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return workers, nil
}

// GetWorker fetches one courier profile.
func (s *WorkerService) GetWorker(ctx context.Context, id string) (*domain.Worker, error) {
	worker, err := s.workers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("worker", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return worker, nil
}

// UpdateWorker replaces a courier profile's mutable fields.
func (s *WorkerService) UpdateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	if worker.Name == "" {
		return nil, apperrors.NewValidationError("worker name is required", nil)
	}
	if err := s.workers.Update(ctx, worker); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("worker", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return worker, nil
}

// DeleteWorker removes a courier profile.
func (s *WorkerService) DeleteWorker(ctx context.Context, id string) error {
	if err := s.workers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("worker", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}
