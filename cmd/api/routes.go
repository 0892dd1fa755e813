package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tamu-thinktank/website-sub000/internal/cache"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware. Browsers accept a single origin per response, so the
	// request's Origin is echoed back only when it is in the trusted set.
	trusted := make(map[string]bool, len(app.Config.CORS.TrustedOrigins))
	for _, origin := range app.Config.CORS.TrustedOrigins {
		trusted[strings.TrimSpace(origin)] = true
	}
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()
		status := gin.H{"db": "ok", "redis": "ok"}
		code := http.StatusOK
		if err := app.DB.Ping(ctx); err != nil {
			status["db"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if err := cache.Ping(ctx, app.Redis); err != nil {
			status["redis"] = err.Error()
		}
		c.JSON(code, status)
	})

	v1 := r.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(app.AdminAuthMiddleware())
	{
		protected.POST("/auto-schedule", app.Handler.AutoSchedule)
		protected.GET("/interviewers", app.Handler.ListInterviewers)
		protected.GET("/applicants/:id/interviews", app.Handler.ListApplicantInterviews)
	}

	return r
}
