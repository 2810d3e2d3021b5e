package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"msc-team.backend/internal/interfaces/http/middleware"
	"msc-team.backend/pkg/metrics"
)

const (
	serviceName    = "msc-team-backend"
	serviceVersion = "1.0.0"
)

var (
	corsAllowMethods  = strings.Join([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}, ", ")
	corsAllowHeaders  = strings.Join([]string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader, middleware.IdempotencyHeader}, ", ")
	corsExposeHeaders = strings.Join([]string{middleware.RequestIDHeader, middleware.IdempotencyHitHeader}, ", ")
)

// applyCORSMiddleware echoes the Origin back when it is allowed. A "*"
// entry allows any origin. Preflight requests end with 204.
func applyCORSMiddleware(r *gin.Engine, allowed []string) {
	allowAll := false
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			allowAll = true
		}
		set[o] = struct{}{}
	}

	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := set[origin]; ok || allowAll {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Methods", corsAllowMethods)
				c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
				c.Header("Access-Control-Expose-Headers", corsExposeHeaders)
				c.Header("Access-Control-Max-Age", "86400")
			}
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine, m *metrics.Metrics) {
	r.GET("/metrics", gin.WrapH(m.Handler()))
}
