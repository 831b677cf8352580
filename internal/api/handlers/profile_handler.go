// Package handlers contains the handlers for the API
package handlers

import (
	"net/http"

	"github.com/aethelgard/aethelgardapi/internal/api/middleware"
	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// ProfileHandler is the handler for the profile API
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler creates a new handler for the profile API
func NewProfileHandler(service *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// UpdateAvatar stores a new avatar reference for the current identity
func (h *ProfileHandler) UpdateAvatar(c echo.Context) error {
	var params struct {
		AvatarURL string `json:"avatarUrl"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.AvatarURL == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`avatarUrl` is required")
	}

	user, err := h.service.UpdateAvatar(middleware.GetClaims(c), params.AvatarURL)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return response.SuccessResponse(c, echo.Map{"ok": true, "avatarUrl": params.AvatarURL, "user": user})
}

// UpdateEmail stores a new email for the current identity and re-issues the
// token so its claims carry the change
func (h *ProfileHandler) UpdateEmail(c echo.Context) error {
	var params struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.Email == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`email` is required")
	}

	token, user, err := h.service.UpdateEmail(middleware.GetClaims(c), params.Email)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return response.SuccessResponse(c, echo.Map{"token": token, "user": user})
}

// UpdateGameName renames the game account behind the current identity
func (h *ProfileHandler) UpdateGameName(c echo.Context) error {
	var params struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.Name == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`name` is required")
	}

	token, user, err := h.service.UpdateGameName(c.Request().Context(), middleware.GetClaims(c), params.Name)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return response.SuccessResponse(c, echo.Map{"token": token, "user": user})
}
