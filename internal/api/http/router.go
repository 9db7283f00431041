package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/http/handlers"
	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Shops          *handlers.ShopsHandler
	Deliveries     *handlers.DeliveriesHandler
	Workers        *handlers.WorkersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/users", cfg.Users.Register)
	app.Post("/login", cfg.Users.Login)

	me := app.Group("/users/me", cfg.AuthMiddleware.Handle)
	me.Get("", cfg.Users.Me)
	me.Put("", cfg.Users.UpdateMe)

	app.Get("/shops", cfg.Shops.List)
	app.Get("/shops/:shopId/products", cfg.Shops.ListProducts)

	shops := app.Group("/shops", cfg.AuthMiddleware.Handle)
	shops.Post("", cfg.Shops.Create)
	shops.Post("/:shopId/products", cfg.Shops.AddProduct)
	shops.Delete("/:shopId/products/:productId", cfg.Shops.RemoveProduct)

	deliveries := app.Group("/deliveries", cfg.AuthMiddleware.Handle)
	deliveries.Get("", cfg.Deliveries.List)
	deliveries.Get("/:id", cfg.Deliveries.Get)
	deliveries.Post("", cfg.Deliveries.Create)

	workers := app.Group("/workers", cfg.AuthMiddleware.Handle)
	workers.Get("", cfg.Workers.List)
	workers.Get("/:id", cfg.Workers.Get)

	adminOnly := auth.RequireRole(domain.RoleAdmin)
	workers.Post("", adminOnly, cfg.Workers.Create)
	workers.Put("/:id", adminOnly, cfg.Workers.Update)
	workers.Delete("/:id", adminOnly, cfg.Workers.Delete)
}
