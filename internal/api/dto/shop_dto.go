package dto

import "github.com/spec-kit/marketplace-service/internal/domain"

// ProductCreateRequest payload for adding a product to a shop.
type ProductCreateRequest struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImagePath string  `json:"imagePath"`
	Quantity  int     `json:"quantity"`
}

// ShopCreateRequest payload for a new shop, optionally with products.
type ShopCreateRequest struct {
	Name      string                 `json:"name"`
	Phone     string                 `json:"phone"`
	ImagePath string                 `json:"imagePath"`
	Products  []ProductCreateRequest `json:"products"`
}

// ToDomain converts the request into a domain shop.
func (r ShopCreateRequest) ToDomain() *domain.Shop {
	products := make([]domain.Product, len(r.Products))
	for i, p := range r.Products {
		products[i] = domain.Product{
			Name:      p.Name,
			Price:     p.Price,
			ImagePath: p.ImagePath,
			Quantity:  p.Quantity,
		}
	}
	return &domain.Shop{
		Name:      r.Name,
		Phone:     r.Phone,
		ImagePath: r.ImagePath,
		Products:  products,
	}
}

// ToDomain converts the request into a domain product.
func (r ProductCreateRequest) ToDomain() *domain.Product {
	return &domain.Product{
		Name:      r.Name,
		Price:     r.Price,
		ImagePath: r.ImagePath,
		Quantity:  r.Quantity,
	}
}
