package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventShopCreated     EventType = "shop_created"
	EventProductRemoved  EventType = "product_removed"
	EventDeliveryCreated EventType = "delivery_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// ShopCreatedPayload payload.
type ShopCreatedPayload struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// ProductRemovedPayload payload.
type ProductRemovedPayload struct {
	ShopID    string `json:"shop_id"`
	ProductID string `json:"product_id"`
}

// DeliveryCreatedPayload payload.
type DeliveryCreatedPayload struct {
	ReceiverPhone string  `json:"receiver_phone"`
	OrderTotal    float64 `json:"order_total"`
	StoreAddress  string  `json:"store_address"`
}
