package domain

import "time"

// DeliveryItem is one ordered product line within a delivery.
type DeliveryItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// StoreLocation is the normalized pickup point of the originating shop.
type StoreLocation struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// Delivery is a courier order record.
type Delivery struct {
	ID             string         `json:"id"`
	PickupAddress  string         `json:"pickupAddress"`
	DeliverAddress string         `json:"deliverAddress"`
	ReceiverName   string         `json:"receiverName"`
	ReceiverPhone  string         `json:"receiverPhone"`
	Weight         string         `json:"weight"`
	Fragile        string         `json:"fragile"`
	Quantity       int            `json:"quantity"`
	ImageBase64    string         `json:"imageBase64,omitempty"`
	Items          []DeliveryItem `json:"items"`
	OrderTotal     float64        `json:"orderTotal"`
	StoreLocation  StoreLocation  `json:"storeLocation"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
