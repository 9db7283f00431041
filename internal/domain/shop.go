package domain

import "time"

// Product is a catalog entry embedded in a shop.
type Product struct {
	ID        string  `json:"id"`
	ShopID    string  `json:"shopId,omitempty"`
	ShopName  string  `json:"shopName,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImagePath string  `json:"imagePath"`
	Quantity  int     `json:"quantity"`
}

// Shop is a seller storefront with its embedded product catalog.
type Shop struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	ImagePath string    `json:"imagePath"`
	Products  []Product `json:"products"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
