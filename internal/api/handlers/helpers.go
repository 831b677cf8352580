// Package handlers contains the handlers for the API
package handlers

import (
	"errors"
	"net/http"

	"github.com/aethelgard/aethelgardapi/internal/config"
	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
	"github.com/labstack/echo/v4"
)

// serviceErrorResponse maps a service-level error onto the response envelope
func serviceErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", err.Error())
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrInvalidGameAccountID):
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrNicknameTaken):
		return response.ErrorResponse(c, http.StatusConflict, "ConflictException", err.Error())
	case errors.Is(err, service.ErrThreadNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", err.Error())
	default:
		return serverErrorResponse(c, err)
	}
}

// serverErrorResponse logs the error with request context and returns a
// 500 whose message hides internals outside development mode
func serverErrorResponse(c echo.Context, err error) error {
	zaplogger.Error("Request failed", zaplogger.Fields{
		"error":  err.Error(),
		"uri":    c.Request().RequestURI,
		"method": c.Request().Method,
		"ip":     c.RealIP(),
	})

	message := "Internal server error"
	if cfg, cfgErr := config.Get(); cfgErr == nil && cfg.IsDevelopment() {
		message = err.Error()
	}
	return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", message)
}
