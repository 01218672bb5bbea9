package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/surfconnect/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, posts *handlers.PostHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Post("/refresh-token", auth.RefreshToken)
	a.Post("/logout", auth.Logout)

	// Spot reports require a valid access token
	p := v1.Group("/posts", authMW)
	p.Post("/", posts.Create)
	p.Get("/", posts.List)
	p.Get("/:id", posts.GetByID)
	p.Delete("/:id", posts.Delete)
}
