package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gsjs-tp/volunteer-service/internal/api/http/handlers"
	"github.com/gsjs-tp/volunteer-service/internal/auth"
)

// AdminRole is the role name allowed to mutate member records.
const AdminRole = "Admin"

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Members        *handlers.MembersHandler
	Divisions      *handlers.DivisionsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Member reads stay open; mutations
// require an authenticated admin account.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	app.Get("/divisions", cfg.Divisions.List)

	members := app.Group("/members")
	members.Get("/", cfg.Members.List)
	members.Get("/:id", cfg.Members.Get)

	protected := members.Group("", cfg.AuthMiddleware.Handle, auth.RequireRole(AdminRole))
	protected.Post("/", cfg.Members.Register)
	protected.Post("/:id/update-status", cfg.Members.UpdateStatus)
	protected.Delete("/:id", cfg.Members.Delete)
}
