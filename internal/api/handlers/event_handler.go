// Package handlers contains the handlers for the API
package handlers

import (
	"net/http"

	"github.com/aethelgard/aethelgardapi/internal/api/middleware"
	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// EventHandler is the handler for the events API
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new handler for the events API
func NewEventHandler(service *service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List returns all events, publicly readable
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List()
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.SuccessResponse(c, events)
}

// Create persists a new event. Admin gate enforced at the route level.
func (h *EventHandler) Create(c echo.Context) error {
	var params models.EventParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.Title == nil || *params.Title == "" || params.Date == nil || *params.Date == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Missing fields")
	}

	event, err := h.service.Create(middleware.GetClaims(c), params)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.CreatedResponse(c, event)
}

// Update merges the supplied fields into the event
func (h *EventHandler) Update(c echo.Context) error {
	var params models.EventParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	event, err := h.service.Update(middleware.GetClaims(c), c.Param("id"), params)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.SuccessResponse(c, event)
}

// Delete removes the event
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Param("id")); err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.SuccessResponse(c, echo.Map{"ok": true})
}
