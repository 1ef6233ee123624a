package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/service/client"
	pasetotoken "github.com/appointease/appointease_backend/pkg/paseto"
)

type ClientHandler struct {
	svc client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func mapClientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, client.ErrNameRequired),
		errors.Is(err, client.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /clients
func (h *ClientHandler) List(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	clients, err := h.svc.List(c.Context(), claims.UserID, client.ListRequest{
		Search:  q.Search,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, clients)
}

// GET /clients/:id
func (h *ClientHandler) Get(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	cl, err := h.svc.GetByID(c.Context(), claims.UserID, clientID)
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, cl)
}

// POST /clients
func (h *ClientHandler) Create(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Name  string  `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
		Notes *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Create(c.Context(), claims.UserID, client.CreateRequest{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
		Notes: body.Notes,
	})
	if err != nil {
		return mapClientError(c, err)
	}

	return created(c, cl)
}

// PUT /clients/:id
func (h *ClientHandler) Update(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
		Notes *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Update(c.Context(), claims.UserID, clientID, client.UpdateRequest{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
		Notes: body.Notes,
	})
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, cl)
}

// DELETE /clients/:id
func (h *ClientHandler) Delete(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, clientID); err != nil {
		return mapClientError(c, err)
	}

	return noContent(c)
}
