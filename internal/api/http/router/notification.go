package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/appointease/appointease_backend/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	rh *handler.ReminderHandler,
	authRequired fiber.Handler,
	cronToken fiber.Handler,
) {
	notifs := api.Group("/notifications")

	notifs.Get("/", nh.List, authRequired)
	notifs.Get("/unread-count", nh.UnreadCount, authRequired)
	notifs.Patch("/read-all", nh.MarkAllRead, authRequired)
	notifs.Patch("/:id/read", nh.MarkRead, authRequired)

	// Reminder triggers: single-shot needs a signed-in provider, the batch
	// endpoint is for the external scheduler only.
	notifs.Post("/send-reminder", rh.SendReminder, authRequired)
	notifs.Get("/cron/reminders", rh.RunBatch, cronToken)

	// Notification preferences nested under /users/me
	me := api.Group("/users/me", authRequired)
	me.Get("/notification-prefs", nh.GetPrefs)
	me.Put("/notification-prefs", nh.UpdatePrefs)
}
