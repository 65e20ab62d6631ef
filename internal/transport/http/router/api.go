package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-job-board/internal/core/auth"
	"go-job-board/internal/repo"
	"go-job-board/internal/transport/http/handler"
	mdw "go-job-board/internal/transport/http/middleware"
)

// NewAPIEngine builds the authenticated variant: every job route sits
// behind bearer auth, signup/login are public.
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := newEngine(l)

	jobs := handler.NewJobHandler(repo.NewJobRepo(db), l)
	users := handler.NewUserHandler(repo.NewUserRepo(db), jwter, l)

	api := r.Group("/api")

	u := api.Group("/users")
	u.POST("/signup", users.Signup)
	u.POST("/login", users.Login)

	j := api.Group("/jobs")
	j.Use(mdw.AuthJWT(jwter))
	mountJobRoutes(j, jobs)

	return r
}

func mountJobRoutes(g *gin.RouterGroup, jobs *handler.JobHandler) {
	g.GET("", jobs.List)
	g.POST("", jobs.Create)
	g.GET("/:id", jobs.Get)
	g.PUT("/:id", jobs.Update)
	g.DELETE("/:id", jobs.Delete)
}

// newEngine wires the shared middleware chain and operational endpoints.
func newEngine(l *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
