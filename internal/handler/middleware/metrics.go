package middleware

import (
	"strconv"

	"pass-config-engine/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RequestMetrics counts requests by route template and status class.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		class := strconv.Itoa(c.Writer.Status()/100) + "xx"
		metrics.HTTPRequests.WithLabelValues(route, class).Inc()
	}
}
