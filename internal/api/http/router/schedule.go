package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/appointease/appointease_backend/internal/api/http/handler"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
) {
	hours := api.Group("/business-hours", authRequired)

	hours.Get("/", sh.List)
	hours.Put("/", sh.SetWeek)
}
