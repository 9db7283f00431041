package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/events"
	"github.com/spec-kit/marketplace-service/internal/repository"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

// DeliveryService manages courier order records.
type DeliveryService struct {
	deliveries repository.DeliveryRepository
	dispatcher events.Dispatcher
}

// NewDeliveryService builds the service.
func NewDeliveryService(deliveries repository.DeliveryRepository, dispatcher events.Dispatcher) *DeliveryService {
	return &DeliveryService{deliveries: deliveries, dispatcher: dispatcher}
}

// CreateDelivery persists a delivery. The store location arrives
// already normalized by the request layer.
func (s *DeliveryService) CreateDelivery(ctx context.Context, delivery *domain.Delivery) (*domain.Delivery, error) {
	if delivery.DeliverAddress == "" || delivery.ReceiverPhone == "" {
		return nil, apperrors.NewValidationError("deliverAddress and receiverPhone are required", nil)
	}

	if err := s.deliveries.Create(ctx, delivery); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventDeliveryCreated,
			SubjectID: delivery.ID,
			Timestamp: time.Now(),
			Payload: events.DeliveryCreatedPayload{
				ReceiverPhone: delivery.ReceiverPhone,
				OrderTotal:    delivery.OrderTotal,
				StoreAddress:  delivery.StoreLocation.Address,
			},
		})
	}
	return delivery, nil
}

// ListDeliveries returns all deliveries, newest first.
func (s *DeliveryService) ListDeliveries(ctx context.Context) ([]domain.Delivery, error) {
	deliveries, err := s.deliveries.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return deliveries, nil
}

// GetDelivery fetches one delivery.
func (s *DeliveryService) GetDelivery(ctx context.Context, id string) (*domain.Delivery, error) {
	delivery, err := s.deliveries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("delivery", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return delivery, nil
}
