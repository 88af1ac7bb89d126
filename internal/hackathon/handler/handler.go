// Package handler provides HTTP handlers for hackathon endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	hackathonModel "github.com/hackdesk/hackdesk/internal/hackathon/model"
	"github.com/hackdesk/hackdesk/internal/hackathon/service"
	"github.com/hackdesk/hackdesk/internal/middleware"
)

// Handler handles HTTP requests for hackathon endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new hackathon handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateHackathon handles POST /hackathon/create request.
func (h *Handler) CreateHackathon(c *gin.Context) {
	var req hackathonModel.CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateHackathon(c.Request.Context(), middleware.Principal(c), &req)
	if err != nil {
		if errors.Is(err, hackathonModel.ErrInvalidName) {
			errorResponse(c, "INVALID_REQUEST", "name must be 3-100 characters", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating hackathon", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Register handles POST /hackathon/register request.
func (h *Handler) Register(c *gin.Context) {
	var req hackathonModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), middleware.Principal(c), &req)
	if err != nil {
		if errors.Is(err, hackathonModel.ErrInvalidName) {
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, hackathonModel.ErrHackathonNotFound) {
			errorResponse(c, "NOT_FOUND", "hackathon not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, hackathonModel.ErrAlreadyRegistered) {
			errorResponse(c, "CONFLICT", "already registered for this hackathon", http.StatusConflict)
			return
		}
		h.logger.Errorw("error registering participant", "hackathon_id", req.HackathonID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
