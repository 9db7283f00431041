package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/dto"
	"github.com/spec-kit/marketplace-service/internal/service"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

// DeliveriesHandler exposes courier order endpoints.
type DeliveriesHandler struct {
	deliveries *service.DeliveryService
}

// NewDeliveriesHandler constructs handler.
func NewDeliveriesHandler(deliveryService *service.DeliveryService) *DeliveriesHandler {
	return &DeliveriesHandler{deliveries: deliveryService}
}

// List handles GET /deliveries.
func (h *DeliveriesHandler) List(c *fiber.Ctx) error {
	deliveries, err := h.deliveries.ListDeliveries(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"deliveries": deliveries},
	})
}

// Get handles GET /deliveries/:id.
func (h *DeliveriesHandler) Get(c *fiber.Ctx) error {
	delivery, err := h.deliveries.GetDelivery(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"delivery": delivery},
	})
}

// Create handles POST /deliveries.
func (h *DeliveriesHandler) Create(c *fiber.Ctx) error {
	var req dto.DeliveryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	delivery, err := h.deliveries.CreateDelivery(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"delivery": delivery},
	})
}
