// Package handlers contains the handlers for the API
package handlers

import (
	"net/http"

	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// UserHandler is the handler for the user listing and admin console API
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new handler for the user API
func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers returns every site user. Admin gate enforced at the route level.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.service.AdminList()
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.SuccessResponse(c, users)
}

// SetAdmin toggles the persisted admin flag of the target user
func (h *UserHandler) SetAdmin(c echo.Context) error {
	var params struct {
		IsAdmin bool `json:"isAdmin"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	user, err := h.service.SetAdmin(c.Param("id"), params.IsAdmin)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.SuccessResponse(c, user)
}

// Recent returns the most recently registered users
func (h *UserHandler) Recent(c echo.Context) error {
	users, err := h.service.Recent()
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.SuccessResponse(c, users)
}
