package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/appointease/appointease_backend/internal/service/user"
	pasetotoken "github.com/appointease/appointease_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	if errors.Is(err, user.ErrNotFound) {
		return notFound(c, err.Error())
	}
	return internalError(c)
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PUT /users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Name         *string `json:"name"`
		BusinessName *string `json:"business_name"`
		Phone        *string `json:"phone"`
		AvatarURL    *string `json:"avatar_url"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), claims.UserID, user.UpdateProfileRequest{
		Name:         body.Name,
		BusinessName: body.BusinessName,
		Phone:        body.Phone,
		AvatarURL:    body.AvatarURL,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// GET /dashboard/stats
func (h *UserHandler) Stats(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	today := time.Now().Format("2006-01-02")
	stats, err := h.svc.Stats(c.Context(), claims.UserID, today)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, stats)
}
