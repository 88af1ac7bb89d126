// Package router provides volunteer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	logisticsRepository "github.com/hackdesk/hackdesk/internal/logistics/repository"
	logisticsService "github.com/hackdesk/hackdesk/internal/logistics/service"
	"github.com/hackdesk/hackdesk/internal/volunteer/handler"
	"github.com/hackdesk/hackdesk/internal/volunteer/service"
)

// RegisterRoutes registers volunteer module routes behind the auth middleware.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	ledger := logisticsService.New(logisticsRepository.New(db, logger), db, logger)
	svc := service.New(ledger, logger)
	h := handler.New(svc, logger)

	r.POST("/volunteer/bind", auth, h.Bind)
	r.DELETE("/volunteer/bind", auth, h.Unbind)
	r.POST("/volunteer/assign", auth, h.Assign)
}
