package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stwalsh4118/cadastre/internal/metrics"
)

// Metrics counts handled requests by route template, method and status.
// Unmatched routes are counted under "unmatched" to keep label cardinality
// bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.IncrementHTTPRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()))
	}
}
