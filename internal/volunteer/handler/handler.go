// Package handler provides HTTP handlers for volunteer endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logisticsModel "github.com/hackdesk/hackdesk/internal/logistics/model"
	"github.com/hackdesk/hackdesk/internal/middleware"
	volunteerModel "github.com/hackdesk/hackdesk/internal/volunteer/model"
	"github.com/hackdesk/hackdesk/internal/volunteer/service"
)

// Handler handles HTTP requests for volunteer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new volunteer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Bind handles POST /volunteer/bind request.
func (h *Handler) Bind(c *gin.Context) {
	var req volunteerModel.BindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Bind(c.Request.Context(), middleware.Principal(c), req.SecretCode); err != nil {
		if errors.Is(err, volunteerModel.ErrEmptyCode) {
			errorResponse(c, "INVALID_REQUEST", "secret_code cannot be empty", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error binding secret code", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, volunteerModel.BindResponse{Bound: true})
}

// Unbind handles DELETE /volunteer/bind request.
func (h *Handler) Unbind(c *gin.Context) {
	h.service.Unbind(c.Request.Context(), middleware.Principal(c))
	c.Status(http.StatusNoContent)
}

// Assign handles POST /volunteer/assign request.
func (h *Handler) Assign(c *gin.Context) {
	var req volunteerModel.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AssignToParticipant(
		c.Request.Context(), middleware.Principal(c), req.ParticipantEmail)
	if err != nil {
		h.writeAssignError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeAssignError maps binding and forwarded ledger errors to response codes.
func (h *Handler) writeAssignError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, volunteerModel.ErrNoBinding):
		errorResponse(c, "PRECONDITION_FAILED", "bind a secret code first", http.StatusUnprocessableEntity)
	case errors.Is(err, logisticsModel.ErrInvalidEmail):
		errorResponse(c, "INVALID_REQUEST", "participant_email is malformed", http.StatusBadRequest)
	case errors.Is(err, logisticsModel.ErrItemNotFound):
		errorResponse(c, "NOT_FOUND", "no logistics item matches the bound secret code", http.StatusNotFound)
	case errors.Is(err, logisticsModel.ErrAlreadyRedeemed):
		errorResponse(c, "CONFLICT", "participant already received this item", http.StatusConflict)
	case errors.Is(err, logisticsModel.ErrExhausted):
		errorResponse(c, "EXHAUSTED", "all units of this item have been given away", http.StatusConflict)
	default:
		h.logger.Errorw("error assigning item to participant", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
