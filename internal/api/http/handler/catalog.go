package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/service/catalog"
	pasetotoken "github.com/appointease/appointease_backend/pkg/paseto"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, catalog.ErrInvalidDuration),
		errors.Is(err, catalog.ErrInvalidPrice):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /services
func (h *CatalogHandler) List(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		IncludeInactive bool `query:"include_inactive"`
	}
	_ = c.Bind().Query(&q)

	services, err := h.svc.List(c.Context(), claims.UserID, q.IncludeInactive)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, services)
}

// GET /services/:id
func (h *CatalogHandler) Get(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	svc, err := h.svc.GetByID(c.Context(), claims.UserID, serviceID)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, svc)
}

// POST /services
func (h *CatalogHandler) Create(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Name            string  `json:"name"`
		Description     *string `json:"description"`
		DurationMinutes int     `json:"duration_minutes"`
		PriceCents      int64   `json:"price_cents"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.Create(c.Context(), claims.UserID, catalog.CreateRequest{
		Name:            body.Name,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		PriceCents:      body.PriceCents,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}

	return created(c, svc)
}

// PUT /services/:id
func (h *CatalogHandler) Update(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		Name            *string `json:"name"`
		Description     *string `json:"description"`
		DurationMinutes *int    `json:"duration_minutes"`
		PriceCents      *int64  `json:"price_cents"`
		Active          *bool   `json:"active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.Update(c.Context(), claims.UserID, serviceID, catalog.UpdateRequest{
		Name:            body.Name,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		PriceCents:      body.PriceCents,
		Active:          body.Active,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, svc)
}

// DELETE /services/:id
func (h *CatalogHandler) Deactivate(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	if err := h.svc.Deactivate(c.Context(), claims.UserID, serviceID); err != nil {
		return mapCatalogError(c, err)
	}

	return noContent(c)
}
