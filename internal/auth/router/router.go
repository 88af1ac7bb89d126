// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackdesk/hackdesk/internal/auth/handler"
	"github.com/hackdesk/hackdesk/internal/auth/service"
)

// RegisterRoutes registers auth module routes.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/auth/session", h.IssueSession)
}
