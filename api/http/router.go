package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/conchobar/candidates/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, candidates *handlers.CandidatesHandler, search *handlers.SearchHandler, uploads *handlers.UploadHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	cg := v1.Group("/candidates")
	cg.Get("/", candidates.List)
	cg.Post("/", candidates.Create)
	cg.Post("/search", search.Search)
	cg.Get("/:id", candidates.Get)
	cg.Put("/:id", candidates.Update)
	cg.Delete("/:id", candidates.Delete)

	v1.Post("/uploads", uploads.Upload)
}
