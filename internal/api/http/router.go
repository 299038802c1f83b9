package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-portal/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Tickets *handlers.TicketsHandler
	Status  *handlers.StatusHandler
	Audit   *handlers.AuditHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")
	api.Get("/health", cfg.Health.Health)
	api.Post("/create-ticket", cfg.Tickets.CreateTicket)
	api.Post("/check-status", cfg.Status.CheckStatus)
	api.Get("/audit-log", cfg.Audit.List)
}
