// Package router provides logistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackdesk/hackdesk/internal/logistics/handler"
	"github.com/hackdesk/hackdesk/internal/logistics/repository"
	"github.com/hackdesk/hackdesk/internal/logistics/service"
)

// RegisterRoutes registers logistics module routes behind the auth middleware.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/logistics/add", auth, h.AddItem)
	r.GET("/logistics/list", auth, h.ListItems)
	r.POST("/logistics/redeem", auth, h.Redeem)
}
