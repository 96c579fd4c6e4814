package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stwalsh4118/cadastre/internal/logger"
)

// probePaths are polled by orchestrators and scrapers and logged at debug.
var probePaths = map[string]bool{
	"/health":       true,
	"/health/ready": true,
	"/metrics":      true,
}

// Logger creates a middleware that logs HTTP requests using structured logging.
// It captures request details, duration, status code, and any errors.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()

		// Get request ID from context
		requestID := GetRequestID(c)

		// Child logger with request ID, plus trace IDs when a span is active
		requestLogger := log.WithRequestID(requestID).WithSpan(c.Request.Context())

		// Store logger in context for handlers to use
		c.Set("logger", requestLogger)

		// Process request
		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if len(c.Request.URL.RawQuery) > 0 {
			fields["query"] = c.Request.URL.RawQuery
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case status == http.StatusBadGateway || status == http.StatusGatewayTimeout:
			// upstream cause is logged by the service
			requestLogger.Warn("Request failed upstream", fields)
		case status >= 500:
			requestLogger.Error("Request completed with server error", nil, fields)
		case status >= 400:
			requestLogger.Warn("Request completed with client error", fields)
		case probePaths[c.Request.URL.Path]:
			requestLogger.Debug("Probe completed", fields)
		default:
			requestLogger.Info("Request completed", fields)
		}
	}
}

// GetLogger retrieves the logger from the Gin context.
// Returns nil if not found.
func GetLogger(c *gin.Context) *logger.Logger {
	if log, exists := c.Get("logger"); exists {
		if logger, ok := log.(*logger.Logger); ok {
			return logger
		}
	}
	return nil
}
