// Package handlers contains the handlers for the API
package handlers

import (
	"net/http"
	"strconv"

	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// RankingHandler is the handler for the ranking and online players API
type RankingHandler struct {
	service *service.RankingService
}

// NewRankingHandler creates a new handler for the ranking API
func NewRankingHandler(service *service.RankingService) *RankingHandler {
	return &RankingHandler{service: service}
}

// Top returns the top characters, bounded by the ranking limit
func (h *RankingHandler) Top(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	rows, err := h.service.TopCharacters(c.Request().Context(), limit)
	if err != nil {
		return serverErrorResponse(c, err)
	}
	return response.SuccessResponse(c, rows)
}

// Online returns the currently online characters
func (h *RankingHandler) Online(c echo.Context) error {
	rows, err := h.service.OnlinePlayers(c.Request().Context())
	if err != nil {
		return serverErrorResponse(c, err)
	}
	return response.SuccessResponse(c, rows)
}

// Health verifies that the characters database is reachable
func (h *RankingHandler) Health(c echo.Context) error {
	if err := h.service.Ping(c.Request().Context()); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Game database unreachable")
	}
	return response.SuccessResponse(c, echo.Map{"ok": true})
}
