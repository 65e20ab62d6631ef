package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-job-board/internal/repo"
	"go-job-board/internal/transport/http/handler"
)

// NewPublicEngine builds the unauthenticated variant: the same job surface
// with no token required and no user routes.
func NewPublicEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := newEngine(l)
	jobs := handler.NewJobHandler(repo.NewJobRepo(db), l)
	mountJobRoutes(r.Group("/api/jobs"), jobs)
	return r
}
