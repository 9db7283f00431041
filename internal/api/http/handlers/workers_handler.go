package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/dto"
	"github.com/spec-kit/marketplace-service/internal/service"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

// WorkersHandler exposes courier profile endpoints.
type WorkersHandler struct {
	workers *service.WorkerService
}

// NewWorkersHandler constructs handler.
func NewWorkersHandler(workerService *service.WorkerService) *WorkersHandler {
	return &WorkersHandler{workers: workerService}
}

// List handles GET /workers.
func (h *WorkersHandler) List(c *fiber.Ctx) error {
	workers, err := h.workers.ListWorkers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"workers": workers},
	})
}

// Get handles GET /workers/:id.
func (h *WorkersHandler) Get(c *fiber.Ctx) error {
	worker, err := h.workers.GetWorker(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"worker": worker},
	})
}

// Create handles POST /workers.
func (h *WorkersHandler) Create(c *fiber.Ctx) error {
	var req dto.WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	worker, err := h.workers.CreateWorker(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"worker": worker},
	})
}

// Update handles PUT /workers/:id.
func (h *WorkersHandler) Update(c *fiber.Ctx) error {
	var req dto.WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	worker := req.ToDomain()
	worker.ID = c.Params("id")

	updated, err := h.workers.UpdateWorker(c.UserContext(), worker)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"worker": updated},
	})
}

// Delete handles DELETE /workers/:id.
func (h *WorkersHandler) Delete(c *fiber.Ctx) error {
	if err := h.workers.DeleteWorker(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"message": "worker removed"},
	})
}
