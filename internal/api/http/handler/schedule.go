package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/appointease/appointease_backend/internal/service/schedule"
	pasetotoken "github.com/appointease/appointease_backend/pkg/paseto"
)

type ScheduleHandler struct {
	svc schedule.Service
}

func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidDay),
		errors.Is(err, schedule.ErrInvalidTime),
		errors.Is(err, schedule.ErrInvalidDate),
		errors.Is(err, schedule.ErrOpenAfterClose):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /business-hours
func (h *ScheduleHandler) List(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	hours, err := h.svc.List(c.Context(), claims.UserID)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, hours)
}

// PUT /business-hours
func (h *ScheduleHandler) SetWeek(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Week []schedule.DayHours `json:"week"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Week) == 0 {
		return badRequest(c, "week must not be empty")
	}

	hours, err := h.svc.SetWeek(c.Context(), claims.UserID, body.Week)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, hours)
}
