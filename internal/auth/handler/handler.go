// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/hackdesk/hackdesk/internal/auth/model"
	"github.com/hackdesk/hackdesk/internal/auth/service"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// IssueSession handles POST /auth/session request.
func (h *Handler) IssueSession(c *gin.Context) {
	var req authModel.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.IssueSession(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authModel.ErrInvalidEmail) {
			errorResponse(c, "INVALID_REQUEST", "email is malformed", http.StatusBadRequest)
			return
		}
		if errors.Is(err, authModel.ErrUnauthenticated) {
			errorResponse(c, "UNAUTHENTICATED", "auth token could not be verified", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error issuing session", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
