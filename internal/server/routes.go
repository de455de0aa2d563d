package server

import (
	"github.com/gin-gonic/gin"

	"resume-scorer/internal/bootstrap"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/metrics"
	"resume-scorer/internal/shared/server/respond"
)

func registerRoutes(r *gin.Engine, app *bootstrap.App) {
	r.GET("/", func(c *gin.Context) {
		respond.OK(c, app.Health.Info())
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, app.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	scoring.NewHandler(app.Scoring).RegisterRoutes(&r.RouterGroup)
}
