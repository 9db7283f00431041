package dto

import "github.com/spec-kit/marketplace-service/internal/domain"

// StoreLocationPayload is the nested form of the pickup location.
type StoreLocationPayload struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// DeliveryCreateRequest payload for a new delivery. Clients send the
// store location either as the nested storeLocation object or as the
// flat storeAddress/storeLat/storeLng keys.
type DeliveryCreateRequest struct {
	PickupAddress  string                `json:"pickupAddress"`
	DeliverAddress string                `json:"deliverAddress"`
	ReceiverName   string                `json:"receiverName"`
	ReceiverPhone  string                `json:"receiverPhone"`
	Weight         string                `json:"weight"`
	Fragile        string                `json:"fragile"`
	Quantity       int                   `json:"quantity"`
	ImageBase64    string                `json:"imageBase64"`
	Items          []DeliveryItemPayload `json:"items"`
	OrderTotal     float64               `json:"orderTotal"`

	StoreLocation *StoreLocationPayload `json:"storeLocation"`
	StoreAddress  string                `json:"storeAddress"`
	StoreLat      *float64              `json:"storeLat"`
	StoreLng      *float64              `json:"storeLng"`
}

// DeliveryItemPayload is one ordered product line.
type DeliveryItemPayload struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ResolveStoreLocation normalizes the two accepted location shapes.
// The nested form, when present, is taken wholesale; the flat keys are
// the fallback and are never mixed into a nested object.
func ResolveStoreLocation(req DeliveryCreateRequest) domain.StoreLocation {
	if req.StoreLocation != nil {
		return domain.StoreLocation{
			Address: req.StoreLocation.Address,
			Lat:     req.StoreLocation.Lat,
			Lng:     req.StoreLocation.Lng,
		}
	}
	return domain.StoreLocation{
		Address: req.StoreAddress,
		Lat:     req.StoreLat,
		Lng:     req.StoreLng,
	}
}

// ToDomain converts the request into a domain delivery with a
// normalized store location.
func (r DeliveryCreateRequest) ToDomain() *domain.Delivery {
	items := make([]domain.DeliveryItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.DeliveryItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	return &domain.Delivery{
		PickupAddress:  r.PickupAddress,
		DeliverAddress: r.DeliverAddress,
		ReceiverName:   r.ReceiverName,
		ReceiverPhone:  r.ReceiverPhone,
		Weight:         r.Weight,
		Fragile:        r.Fragile,
		Quantity:       r.Quantity,
		ImageBase64:    r.ImageBase64,
		Items:          items,
		OrderTotal:     r.OrderTotal,
		StoreLocation:  ResolveStoreLocation(r),
	}
}
