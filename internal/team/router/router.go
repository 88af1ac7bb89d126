// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackdesk/hackdesk/internal/team/handler"
	"github.com/hackdesk/hackdesk/internal/team/repository"
	"github.com/hackdesk/hackdesk/internal/team/service"
)

// RegisterRoutes registers team module routes behind the auth middleware.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/team/create", auth, h.CreateTeam)
	r.POST("/team/join", auth, h.JoinTeam)
	r.POST("/team/submit", auth, h.SubmitTeam)
	r.GET("/team/presence", auth, h.Presence)
}
