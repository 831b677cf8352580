// Package handlers contains the handlers for the API
package handlers

import (
	"net/http"

	"github.com/aethelgard/aethelgardapi/internal/api/middleware"
	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// AuthHandler is the handler for the auth API
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler for the auth API
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup creates a new site user and issues a session token
func (h *AuthHandler) Signup(c echo.Context) error {
	var params service.SignupParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	if params.Email == "" || params.Password == "" || params.Nickname == "" ||
		params.FirstName == "" || params.LastName == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Missing fields")
	}

	token, user, err := h.service.Signup(params)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return response.SuccessResponse(c, echo.Map{"token": token, "user": user})
}

// Login verifies site credentials and issues a session token
func (h *AuthHandler) Login(c echo.Context) error {
	var params struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.Email == "" || params.Password == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Missing fields")
	}

	token, user, err := h.service.Login(params.Email, params.Password)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return response.SuccessResponse(c, echo.Map{"token": token, "user": user})
}

// LoginGame verifies game account credentials and issues a session token
func (h *AuthHandler) LoginGame(c echo.Context) error {
	var params struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.Username == "" || params.Password == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Missing fields")
	}

	token, user, err := h.service.LoginGame(c.Request().Context(), params.Username, params.Password)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return response.SuccessResponse(c, echo.Map{"token": token, "user": user})
}

// Me resolves the identity behind the presented token
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.GetClaims(c)

	user, err := h.service.Me(claims)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return response.SuccessResponse(c, user)
}
