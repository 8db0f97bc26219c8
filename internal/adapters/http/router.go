package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/apiweb/internal/adapters/config"
	"github.com/rafaelleal24/apiweb/internal/adapters/http/controllers"
	"github.com/rafaelleal24/apiweb/internal/adapters/http/middleware"
	"github.com/rafaelleal24/apiweb/internal/core/port"
)

type Router struct {
	healthController   *controllers.HealthController
	productController  *controllers.ProductController
	customerController *controllers.CustomerController
	rateLimiter        port.RateLimiterPort
	createRateLimit    int
}

// NewRouter wires the controllers. rateLimiter may be nil, in which case POST routes are not throttled.
func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	customerController *controllers.CustomerController,
	rateLimiter port.RateLimiterPort,
	createRateLimit int,
) *Router {
	return &Router{
		healthController:   healthController,
		productController:  productController,
		customerController: customerController,
		rateLimiter:        rateLimiter,
		createRateLimit:    createRateLimit,
	}
}

func (r *Router) createHandlers(handler gin.HandlerFunc) []gin.HandlerFunc {
	if r.rateLimiter == nil || r.createRateLimit <= 0 {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{middleware.RateLimit(r.rateLimiter, r.createRateLimit, time.Minute), handler}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	{
		apiGroup.Use(middleware.RequestID(), middleware.LogRequest())
		apiGroup.GET("/health", r.healthController.Health)

		apiGroup.GET("/product", r.productController.GetAll)
		apiGroup.GET("/product/:id", r.productController.GetByID)
		apiGroup.POST("/product", r.createHandlers(r.productController.CreateProduct)...)

		apiGroup.GET("/customer", r.customerController.GetAll)
		apiGroup.GET("/customer/:id", r.customerController.GetByID)
		apiGroup.POST("/customer", r.createHandlers(r.customerController.CreateCustomer)...)
	}
}

func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)
	return engine
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: r.Engine(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
