package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"msc-team.backend/pkg/metrics"
)

// MetricsMiddleware records request count and latency by route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
