// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackdesk/hackdesk/internal/middleware"
	"github.com/hackdesk/hackdesk/internal/statistics/model"
	"github.com/hackdesk/hackdesk/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetHackathonStatistics handles GET /statistics/hackathon request.
func (h *Handler) GetHackathonStatistics(c *gin.Context) {
	hackathonID := c.Query("hackathon_id")
	if hackathonID == "" {
		errorResponse(c, "INVALID_REQUEST", "hackathon_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetHackathonStatistics(
		c.Request.Context(), middleware.Principal(c), hackathonID)
	if err != nil {
		if errors.Is(err, model.ErrHackathonNotFound) {
			errorResponse(c, "NOT_FOUND", "hackathon not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, model.ErrNotOrganizer) {
			errorResponse(c, "PERMISSION_DENIED", "only the hackathon organizer may do this", http.StatusForbidden)
			return
		}
		h.logger.Errorw("error getting hackathon statistics", "hackathon_id", hackathonID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
