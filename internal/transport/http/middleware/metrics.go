package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"agroassist/internal/platform/metrics"
)

// Metrics records one observation per request, labelled by matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
