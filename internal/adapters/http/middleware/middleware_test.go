package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/apiweb/internal/core/logger"
	"github.com/rafaelleal24/apiweb/internal/core/port/mock"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	handlers = append(handlers, func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	engine.GET("/ping", handlers...)
	return engine
}

func TestRateLimit(t *testing.T) {
	t.Run("blocks once over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mock.NewMockRateLimiterPort(ctrl)
		engine := newEngine(RateLimit(limiter, 2, time.Minute))

		gomock.InOrder(
			limiter.EXPECT().Allow(gomock.Any(), "GET:/ping:192.0.2.1", 2, time.Minute).Return(true, nil).Times(2),
			limiter.EXPECT().Allow(gomock.Any(), "GET:/ping:192.0.2.1", 2, time.Minute).Return(false, nil),
		)

		codes := make([]int, 3)
		for i := range codes {
			rr := httptest.NewRecorder()
			engine.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
			codes[i] = rr.Code
			if i == 2 && rr.Header().Get("Retry-After") != "60" {
				t.Fatalf("expected Retry-After 60, got %q", rr.Header().Get("Retry-After"))
			}
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Fatalf("expected first two requests to pass, got %v", codes)
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Fatalf("expected 429 for third request, got %d", codes[2])
		}
	})

	t.Run("fails open when the limiter errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mock.NewMockRateLimiterPort(ctrl)
		engine := newEngine(RateLimit(limiter, 1, time.Minute))

		limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), 1, time.Minute).Return(false, errors.New("redis down"))

		rr := httptest.NewRecorder()
		engine.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID(), LogRequest())

	t.Run("generates an id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		engine.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rr.Header().Get(RequestIDHeader) == "" {
			t.Fatal("expected a generated request id")
		}
	})

	t.Run("tags the request context", func(t *testing.T) {
		var seen string
		tagged := gin.New()
		tagged.GET("/ping", RequestID(), func(c *gin.Context) {
			seen = logger.RequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "ctx-1")
		tagged.ServeHTTP(httptest.NewRecorder(), req)
		if seen != "ctx-1" {
			t.Fatalf("expected 'ctx-1' in context, got %q", seen)
		}
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		engine.ServeHTTP(rr, req)
		if got := rr.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Fatalf("expected 'abc-123', got %q", got)
		}
	})
}

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		route  string
		status int
		want   logger.LogLevel
	}{
		{"/api/product", http.StatusOK, logger.LogLevelInfo},
		{"/api/product", http.StatusNotFound, logger.LogLevelWarn},
		{"/api/product", http.StatusInternalServerError, logger.LogLevelError},
		{"/api/health", http.StatusOK, logger.LogLevelDebug},
		{"/api/health", http.StatusServiceUnavailable, logger.LogLevelError},
	}
	for _, tt := range tests {
		t.Run(tt.route+" "+strconv.Itoa(tt.status), func(t *testing.T) {
			if got := levelForStatus(tt.route, tt.status); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
