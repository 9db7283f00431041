package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/dto"
	"github.com/spec-kit/marketplace-service/internal/service"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

// ShopsHandler exposes storefront and catalog endpoints.
type ShopsHandler struct {
	shops *service.ShopService
}

// NewShopsHandler constructs handler.
func NewShopsHandler(shopService *service.ShopService) *ShopsHandler {
	return &ShopsHandler{shops: shopService}
}

// List handles GET /shops.
func (h *ShopsHandler) List(c *fiber.Ctx) error {
	shops, err := h.shops.ListShops(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"shops": shops},
	})
}

// Create handles POST /shops.
func (h *ShopsHandler) Create(c *fiber.Ctx) error {
	var req dto.ShopCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	shop, err := h.shops.CreateShop(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"shop": shop},
	})
}

// ListProducts handles GET /shops/:shopId/products.
func (h *ShopsHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.shops.ShopProducts(c.UserContext(), c.Params("shopId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"products": products},
	})
}

// AddProduct handles POST /shops/:shopId/products.
func (h *ShopsHandler) AddProduct(c *fiber.Ctx) error {
	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	product, err := h.shops.AddProduct(c.UserContext(), c.Params("shopId"), req.ToDomain())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"product": product},
	})
}

// RemoveProduct handles DELETE /shops/:shopId/products/:productId.
func (h *ShopsHandler) RemoveProduct(c *fiber.Ctx) error {
	if err := h.shops.RemoveProduct(c.UserContext(), c.Params("shopId"), c.Params("productId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"message": "product removed"},
	})
}
