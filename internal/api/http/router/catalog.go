package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/appointease/appointease_backend/internal/api/http/handler"
)

func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	ch *handler.CatalogHandler,
	authRequired fiber.Handler,
) {
	services := api.Group("/services", authRequired)

	services.Get("/", ch.List)
	services.Post("/", ch.Create)
	services.Get("/:id", ch.Get)
	services.Put("/:id", ch.Update)
	services.Delete("/:id", ch.Deactivate)
}
