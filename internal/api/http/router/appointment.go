package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/appointease/appointease_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", ah.List)
	appts.Post("/", ah.Create)
	appts.Get("/:id", ah.Get)
	appts.Put("/:id", ah.Update)
	appts.Patch("/:id/confirm", ah.Confirm)
	appts.Patch("/:id/cancel", ah.Cancel)
	appts.Patch("/:id/complete", ah.Complete)
	appts.Patch("/:id/no-show", ah.MarkNoShow)
}
