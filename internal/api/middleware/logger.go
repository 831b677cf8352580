// Package middleware provides the middleware for the Echo instance
package middleware

import (
	"errors"
	"net/http"

	"github.com/aethelgard/aethelgardapi/internal/config"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware configures and adds middleware to the Echo instance
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}: ip=${remote_ip}, req=${method}, uri=${uri}, status=${status}, error=${error}, latency=${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	e.HTTPErrorHandler = errorHandler(cfg)
}

// errorHandler is the central handler for errors that escape the route
// handlers: panics surfaced by Recover, routing failures and malformed
// requests. Internals are only exposed in development mode.
func errorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message := http.StatusText(httpErr.Code)
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
			switch httpErr.Code {
			case http.StatusNotFound:
				_ = response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Not found")
			case http.StatusMethodNotAllowed:
				_ = response.ErrorResponse(c, http.StatusMethodNotAllowed, "InputException", message)
			default:
				_ = response.ErrorResponse(c, httpErr.Code, "ServerException", message)
			}
			return
		}

		zaplogger.Error("Unhandled error", zaplogger.Fields{
			"error":  err.Error(),
			"uri":    c.Request().RequestURI,
			"method": c.Request().Method,
			"ip":     c.RealIP(),
		})

		message := "Internal server error"
		if cfg.IsDevelopment() {
			message = err.Error()
		}
		_ = response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", message)
	}
}
