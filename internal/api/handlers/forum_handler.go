// Package handlers contains the handlers for the API
package handlers

import (
	"net/http"

	"github.com/aethelgard/aethelgardapi/internal/api/middleware"
	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// ForumHandler is the handler for the forum API
type ForumHandler struct {
	service *service.ForumService
}

// NewForumHandler creates a new handler for the forum API
func NewForumHandler(service *service.ForumService) *ForumHandler {
	return &ForumHandler{service: service}
}

// ListThreads returns thread summaries, newest first
func (h *ForumHandler) ListThreads(c echo.Context) error {
	threads, err := h.service.ListThreads()
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.SuccessResponse(c, threads)
}

// GetThread returns a full thread with its replies
func (h *ForumHandler) GetThread(c echo.Context) error {
	thread, err := h.service.GetThread(c.Param("id"))
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.SuccessResponse(c, thread)
}

// CreateThread creates a new thread authored by the current identity
func (h *ForumHandler) CreateThread(c echo.Context) error {
	var params struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.Title == "" || params.Content == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Missing fields")
	}

	thread, err := h.service.CreateThread(middleware.GetClaims(c), params.Title, params.Content)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.CreatedResponse(c, thread)
}

// AddReply appends a reply to the thread
func (h *ForumHandler) AddReply(c echo.Context) error {
	var params struct {
		Content string `json:"content"`
	}
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if params.Content == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`content` is required")
	}

	reply, err := h.service.AddReply(middleware.GetClaims(c), c.Param("id"), params.Content)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return response.CreatedResponse(c, reply)
}
