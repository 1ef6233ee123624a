package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/appointease/appointease_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	uh *handler.UserHandler,
	authRequired fiber.Handler,
) {
	me := api.Group("/users/me", authRequired)
	me.Get("/", uh.Me)
	me.Put("/", uh.UpdateMe)

	api.Get("/dashboard/stats", uh.Stats, authRequired)
}
