package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/service/appointment"
	pasetotoken "github.com/appointease/appointease_backend/pkg/paseto"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrClientNotFound),
		errors.Is(err, appointment.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidDate),
		errors.Is(err, appointment.ErrInvalidTime),
		errors.Is(err, appointment.ErrOutsideBusinessHours):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCanceled),
		errors.Is(err, appointment.ErrAlreadyCompleted),
		errors.Is(err, appointment.ErrNotReschedulable),
		errors.Is(err, appointment.ErrInvalidTransition):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		ClientID string `query:"client_id"`
		Status   string `query:"status"`
		DateFrom string `query:"date_from"`
		DateTo   string `query:"date_to"`
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.ClientID != "" {
		id, err := uuid.Parse(q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.DateFrom != "" {
		req.DateFrom = &q.DateFrom
	}
	if q.DateTo != "" {
		req.DateTo = &q.DateTo
	}

	appts, err := h.svc.List(c.Context(), claims.UserID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), claims.UserID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		ClientID  string  `json:"client_id"`
		ServiceID string  `json:"service_id"`
		Date      string  `json:"date"`
		Time      string  `json:"time"`
		Notes     *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}
	serviceID, err := uuid.Parse(body.ServiceID)
	if err != nil {
		return badRequest(c, "invalid service_id")
	}

	appt, err := h.svc.Create(c.Context(), claims.UserID, appointment.CreateRequest{
		ClientID:  clientID,
		ServiceID: serviceID,
		Date:      body.Date,
		Time:      body.Time,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PUT /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		ServiceID *string `json:"service_id"`
		Date      *string `json:"date"`
		Time      *string `json:"time"`
		Notes     *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := appointment.UpdateRequest{
		Date:  body.Date,
		Time:  body.Time,
		Notes: body.Notes,
	}
	if body.ServiceID != nil {
		id, pErr := uuid.Parse(*body.ServiceID)
		if pErr != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}

	appt, err := h.svc.Update(c.Context(), claims.UserID, apptID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Confirm)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Cancel)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Complete)
}

// PATCH /appointments/:id/no-show
func (h *AppointmentHandler) MarkNoShow(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.MarkNoShow)
}

func (h *AppointmentHandler) lifecycle(c fiber.Ctx, op func(ctx context.Context, providerID, apptID uuid.UUID) error) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := op(c.Context(), claims.UserID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
