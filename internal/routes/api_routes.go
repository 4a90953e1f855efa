package routes

import (
	"github.com/go-chi/chi/v5"

	"space-catalog/shipyard/internal/api"
	"space-catalog/shipyard/internal/middleware"
)

// RegisterAPIRoutes registers the ship catalog under /rest.
// Writes are guarded by RequireToken when a token service is configured.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	ships := deps.Services.Ships

	r.Route("/rest/ships", func(rs chi.Router) {
		rs.Get("/", api.ListShipsHandler(ships))
		rs.Get("/count", api.CountShipsHandler(ships))
		rs.Get("/{id}", api.GetShipHandler(ships))

		rs.Group(func(write chi.Router) {
			if deps.Services.Tokens != nil {
				write.Use(middleware.RequireToken(deps.Services.Tokens))
			}
			write.Post("/", api.CreateShipHandler(ships))
			write.Put("/{id}", api.UpdateShipHandler(ships))
			write.Delete("/{id}", api.DeleteShipHandler(ships))
		})
	})
}
