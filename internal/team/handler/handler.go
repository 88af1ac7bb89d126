// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackdesk/hackdesk/internal/middleware"
	teamModel "github.com/hackdesk/hackdesk/internal/team/model"
	"github.com/hackdesk/hackdesk/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /team/create request.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), middleware.Principal(c), &req)
	if err != nil {
		h.writeTeamError(c, err, "error creating team")
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team": resp,
	})
}

// JoinTeam handles POST /team/join request.
func (h *Handler) JoinTeam(c *gin.Context) {
	var req teamModel.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.JoinTeam(c.Request.Context(), middleware.Principal(c), &req)
	if err != nil {
		h.writeTeamError(c, err, "error joining team")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"team": resp,
	})
}

// SubmitTeam handles POST /team/submit request.
func (h *Handler) SubmitTeam(c *gin.Context) {
	var req teamModel.SubmitTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SubmitTeam(c.Request.Context(), middleware.Principal(c), &req)
	if err != nil {
		h.writeTeamError(c, err, "error submitting team")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"team": resp,
	})
}

// Presence handles GET /team/presence request.
func (h *Handler) Presence(c *gin.Context) {
	hackathonID := c.Query("hackathon_id")
	if hackathonID == "" {
		errorResponse(c, "INVALID_REQUEST", "hackathon_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CheckPresence(c.Request.Context(), middleware.Principal(c), hackathonID)
	if err != nil {
		h.logger.Errorw("error checking team presence", "hackathon_id", hackathonID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeTeamError maps team service errors to stable response codes.
func (h *Handler) writeTeamError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, teamModel.ErrInvalidTeamName):
		errorResponse(c, "INVALID_REQUEST", "team_name must be 3-50 characters", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrInvalidTeamCode):
		errorResponse(c, "INVALID_REQUEST", "team_code must be 6 alphanumeric characters", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrNotRegistered):
		errorResponse(c, "PERMISSION_DENIED", "not registered for this hackathon", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrNotLeader):
		errorResponse(c, "PERMISSION_DENIED", "only the team leader may submit", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrTeamNotFound):
		errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
	case errors.Is(err, teamModel.ErrAlreadyInTeam):
		errorResponse(c, "CONFLICT", "already a member of a team in this hackathon", http.StatusConflict)
	case errors.Is(err, teamModel.ErrTeamNameTaken):
		errorResponse(c, "CONFLICT", "team_name already taken in this hackathon", http.StatusConflict)
	case errors.Is(err, teamModel.ErrDuplicateTeam):
		errorResponse(c, "CONFLICT", "team could not be created, retry the request", http.StatusConflict)
	case errors.Is(err, teamModel.ErrTeamSubmitted):
		errorResponse(c, "CONFLICT", "team is submitted and closed to joins", http.StatusConflict)
	case errors.Is(err, teamModel.ErrAlreadySubmitted):
		errorResponse(c, "PRECONDITION_FAILED", "team has already been submitted", http.StatusUnprocessableEntity)
	case errors.Is(err, teamModel.ErrRosterTooSmall):
		errorResponse(c, "PRECONDITION_FAILED", "team needs at least 2 members to submit", http.StatusUnprocessableEntity)
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
