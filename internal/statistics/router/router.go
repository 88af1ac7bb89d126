// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackdesk/hackdesk/internal/statistics/handler"
	"github.com/hackdesk/hackdesk/internal/statistics/repository"
	"github.com/hackdesk/hackdesk/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes behind the auth middleware.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/statistics/hackathon", auth, h.GetHackathonStatistics)
}
