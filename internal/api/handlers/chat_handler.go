// Package handlers contains the handlers for the API
package handlers

import (
	"net/http"

	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// ChatHandler is the handler for the chatbot API
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new handler for the chatbot API
func NewChatHandler(service *service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Send answers a single chat message
func (h *ChatHandler) Send(c echo.Context) error {
	var params struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.Message == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`message` is required")
	}

	reply, err := h.service.Send(c.Request().Context(), params.Message)
	if err != nil {
		return serverErrorResponse(c, err)
	}
	return response.SuccessResponse(c, echo.Map{"reply": reply})
}
