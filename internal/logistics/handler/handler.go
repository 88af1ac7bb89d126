// Package handler provides HTTP handlers for logistics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logisticsModel "github.com/hackdesk/hackdesk/internal/logistics/model"
	"github.com/hackdesk/hackdesk/internal/logistics/service"
	"github.com/hackdesk/hackdesk/internal/middleware"
)

// Handler handles HTTP requests for logistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new logistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddItem handles POST /logistics/add request.
func (h *Handler) AddItem(c *gin.Context) {
	var req logisticsModel.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddItem(c.Request.Context(), middleware.Principal(c), &req)
	if err != nil {
		h.writeLogisticsError(c, err, "error adding logistics item")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListItems handles GET /logistics/list request.
func (h *Handler) ListItems(c *gin.Context) {
	hackathonID := c.Query("hackathon_id")
	if hackathonID == "" {
		errorResponse(c, "INVALID_REQUEST", "hackathon_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListItems(c.Request.Context(), middleware.Principal(c), hackathonID)
	if err != nil {
		h.writeLogisticsError(c, err, "error listing logistics items")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Redeem handles POST /logistics/redeem request.
func (h *Handler) Redeem(c *gin.Context) {
	var req logisticsModel.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Redeem(c.Request.Context(), &req)
	if err != nil {
		h.writeLogisticsError(c, err, "error redeeming logistics item")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeLogisticsError maps logistics service errors to stable response codes.
func (h *Handler) writeLogisticsError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, logisticsModel.ErrInvalidItemName):
		errorResponse(c, "INVALID_REQUEST", "name must be 3-100 characters", http.StatusBadRequest)
	case errors.Is(err, logisticsModel.ErrInvalidQuantity):
		errorResponse(c, "INVALID_REQUEST", "total_quantity must be between 1 and 10000", http.StatusBadRequest)
	case errors.Is(err, logisticsModel.ErrInvalidEmail):
		errorResponse(c, "INVALID_REQUEST", "participant_email is malformed", http.StatusBadRequest)
	case errors.Is(err, logisticsModel.ErrNotOrganizer):
		errorResponse(c, "PERMISSION_DENIED", "only the hackathon organizer may do this", http.StatusForbidden)
	case errors.Is(err, logisticsModel.ErrHackathonNotFound):
		errorResponse(c, "NOT_FOUND", "hackathon not found", http.StatusNotFound)
	case errors.Is(err, logisticsModel.ErrItemNotFound):
		errorResponse(c, "NOT_FOUND", "no logistics item matches this secret code", http.StatusNotFound)
	case errors.Is(err, logisticsModel.ErrAlreadyRedeemed):
		errorResponse(c, "CONFLICT", "participant already received this item", http.StatusConflict)
	case errors.Is(err, logisticsModel.ErrExhausted):
		errorResponse(c, "EXHAUSTED", "all units of this item have been given away", http.StatusConflict)
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
