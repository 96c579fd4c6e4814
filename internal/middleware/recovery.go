package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/stwalsh4118/cadastre/internal/logger"
)

// Recovery turns a panic in a handler into a 500 response. The panic is
// logged with its stack and recorded on the request span, if any.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			err := fmt.Errorf("panic: %v", recovered)
			requestID := GetRequestID(c)

			span := trace.SpanFromContext(c.Request.Context())
			span.RecordError(err, trace.WithStackTrace(true))
			span.SetStatus(codes.Error, "panic")

			requestLogger := GetLogger(c)
			if requestLogger == nil {
				requestLogger = log
			}
			requestLogger.Error("Panic recovered", err, map[string]interface{}{
				"request_id": requestID,
				"method":     c.Request.Method,
				"route":      c.FullPath(),
				"path":       c.Request.URL.Path,
				"stack":      string(debug.Stack()),
			})

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":       "INTERNAL_SERVER_ERROR",
					"message":    "An unexpected error occurred",
					"request_id": requestID,
				},
			})
		}()

		c.Next()
	}
}
