// Package router provides hackathon module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackdesk/hackdesk/internal/hackathon/handler"
	"github.com/hackdesk/hackdesk/internal/hackathon/repository"
	"github.com/hackdesk/hackdesk/internal/hackathon/service"
)

// RegisterRoutes registers hackathon module routes behind the auth middleware.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/hackathon/create", auth, h.CreateHackathon)
	r.POST("/hackathon/register", auth, h.Register)
}
