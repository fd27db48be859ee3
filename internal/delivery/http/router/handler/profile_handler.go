package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and role handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type assignRoleInput struct {
	Principal string      `json:"principal" validate:"required"`
	Role      entity.Role `json:"role" validate:"required"`
}

type roleView struct {
	Role    entity.Role `json:"role"`
	IsAdmin bool        `json:"isAdmin"`
}

// GetProfile handles the caller profile request.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetCallerProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// SaveProfile handles saving the caller profile.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	var profile entity.UserProfile
	if err := c.Bind(&profile); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := h.uc.SaveCallerProfile(c.Request().Context(), profile); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile saved")
}

// GetRole reports the caller's role and admin capability.
func (h *ProfileHandler) GetRole(c echo.Context) error {
	ctx := c.Request().Context()

	role, err := h.uc.GetCallerRole(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	isAdmin, err := h.uc.IsCallerAdmin(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roleView{Role: role, IsAdmin: isAdmin}, "")
}

// AssignRole handles an admin role grant.
func (h *ProfileHandler) AssignRole(c echo.Context) error {
	var input assignRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Principal and role are required")
	}

	if err := h.uc.AssignRole(c.Request().Context(), input.Principal, input.Role); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role assigned")
}
