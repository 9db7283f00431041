package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/marketplace-service/internal/domain"
)

// DeliveryRepository defines persistence access for courier orders.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *domain.Delivery) error
	List(ctx context.Context) ([]domain.Delivery, error)
	GetByID(ctx context.Context, id string) (*domain.Delivery, error)
}

type deliveryRepository struct {
	pool *pgxpool.Pool
}

// NewDeliveryRepository returns a Postgres-backed implementation.
func NewDeliveryRepository(pool *pgxpool.Pool) DeliveryRepository {
	return &deliveryRepository{pool: pool}
}

func (r *deliveryRepository) Create(ctx context.Context, delivery *domain.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = NewDeliveryID()
	}
	if delivery.Items == nil {
		delivery.Items = []domain.DeliveryItem{}
	}

	items, err := json.Marshal(delivery.Items)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO deliveries (
            id, pickup_address, deliver_address, receiver_name, receiver_phone,
            weight, fragile, quantity, image_base64, items, order_total,
            store_address, store_lat, store_lng)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		delivery.ID,
		delivery.PickupAddress,
		delivery.DeliverAddress,
		delivery.ReceiverName,
		delivery.ReceiverPhone,
		delivery.Weight,
		delivery.Fragile,
		delivery.Quantity,
		delivery.ImageBase64,
		items,
		delivery.OrderTotal,
		delivery.StoreLocation.Address,
		delivery.StoreLocation.Lat,
		delivery.StoreLocation.Lng,
	).Scan(&delivery.CreatedAt, &delivery.UpdatedAt)
}

func (r *deliveryRepository) List(ctx context.Context) ([]domain.Delivery, error) {
	const query = `
        SELECT id, pickup_address, deliver_address, receiver_name, receiver_phone,
               weight, fragile, quantity, image_base64, items, order_total,
               store_address, store_lat, store_lng, created_at, updated_at
        FROM deliveries ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := []domain.Delivery{}
	for rows.Next() {
		var delivery domain.Delivery
		var items []byte
		if err := rows.Scan(
			&delivery.ID,
			&delivery.PickupAddress,
			&delivery.DeliverAddress,
			&delivery.ReceiverName,
			&delivery.ReceiverPhone,
			&delivery.Weight,
			&delivery.Fragile,
			&delivery.Quantity,
			&delivery.ImageBase64,
			&items,
			&delivery.OrderTotal,
			&delivery.StoreLocation.Address,
			&delivery.StoreLocation.Lat,
			&delivery.StoreLocation.Lng,
			&delivery.CreatedAt,
			&delivery.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &delivery.Items); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, delivery)
	}
	return deliveries, rows.Err()
}

func (r *deliveryRepository) GetByID(ctx context.Context, id string) (*domain.Delivery, error) {
	const query = `
        SELECT id, pickup_address, deliver_address, receiver_name, receiver_phone,
               weight, fragile, quantity, image_base64, items, order_total,
               store_address, store_lat, store_lng, created_at, updated_at
        FROM deliveries WHERE id=$1`

	var delivery domain.Delivery
	var items []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&delivery.ID,
		&delivery.PickupAddress,
		&delivery.DeliverAddress,
		&delivery.ReceiverName,
		&delivery.ReceiverPhone,
		&delivery.Weight,
		&delivery.Fragile,
		&delivery.Quantity,
		&delivery.ImageBase64,
		&items,
		&delivery.OrderTotal,
		&delivery.StoreLocation.Address,
		&delivery.StoreLocation.Lat,
		&delivery.StoreLocation.Lng,
		&delivery.CreatedAt,
		&delivery.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &delivery.Items); err != nil {
		return nil, err
	}
	return &delivery, nil
}
