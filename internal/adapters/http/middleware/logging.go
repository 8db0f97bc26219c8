package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/apiweb/internal/core/logger"
)

// quietRoutes are polled by orchestrators and logged at debug when they succeed.
var quietRoutes = map[string]bool{
	"/api/health": true,
}

func levelForStatus(route string, statusCode int) logger.LogLevel {
	switch {
	case statusCode >= 500:
		return logger.LogLevelError
	case statusCode >= 400:
		return logger.LogLevelWarn
	case quietRoutes[route]:
		return logger.LogLevelDebug
	default:
		return logger.LogLevelInfo
	}
}

// LogRequest emits one "HTTP Request" entry per request once the handlers have run.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		status := c.Writer.Status()
		attrs := map[string]any{
			"http.method":      c.Request.Method,
			"http.path":        c.Request.URL.Path,
			"http.route":       route,
			"http.status_code": status,
			"http.duration_ms": time.Since(start).Milliseconds(),
			"http.client_ip":   c.ClientIP(),
		}

		if contentLength := c.Request.Header.Get("Content-Length"); contentLength != "" {
			if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil {
				attrs["http.request_size"] = size
			}
		}
		if size := c.Writer.Size(); size > 0 {
			attrs["http.response_size"] = size
		}
		if len(c.Errors) > 0 {
			attrs["http.errors"] = c.Errors.String()
		}

		logger.Log(c.Request.Context(), logger.LogEntry{
			Level:      levelForStatus(route, status),
			Message:    "HTTP Request",
			Attributes: attrs,
			Timestamp:  time.Now(),
		})
	}
}
