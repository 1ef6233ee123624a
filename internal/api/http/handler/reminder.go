package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/service/reminder"
)

type ReminderHandler struct {
	svc reminder.Service
}

func NewReminderHandler(svc reminder.Service) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

func mapReminderError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reminder.ErrAppointmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, reminder.ErrInvalidDate):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /notifications/send-reminder
func (h *ReminderHandler) SendReminder(c fiber.Ctx) error {
	var body struct {
		AppointmentID string `json:"appointment_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.AppointmentID == "" {
		return badRequest(c, "appointment_id is required")
	}

	apptID, err := uuid.Parse(body.AppointmentID)
	if err != nil {
		return badRequest(c, "invalid appointment_id")
	}

	res, err := h.svc.SendForAppointment(c.Context(), apptID)
	if err != nil {
		return mapReminderError(c, err)
	}

	return ok(c, res)
}

// GET /notifications/cron/reminders
//
// Invoked by the external scheduler once a day; reminds every appointment
// booked for tomorrow. An explicit ?date=YYYY-MM-DD overrides the target,
// which makes re-runs for a missed day possible.
func (h *ReminderHandler) RunBatch(c fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}

	res, err := h.svc.RunForDate(c.Context(), date)
	if err != nil {
		return mapReminderError(c, err)
	}

	return ok(c, res)
}
