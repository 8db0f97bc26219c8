package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rafaelleal24/apiweb/internal/adapters/config"
	"github.com/rafaelleal24/apiweb/internal/adapters/http"
	"github.com/rafaelleal24/apiweb/internal/adapters/http/controllers"
	"github.com/rafaelleal24/apiweb/internal/adapters/memory"
	"github.com/rafaelleal24/apiweb/internal/adapters/mongo"
	"github.com/rafaelleal24/apiweb/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/apiweb/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/apiweb/internal/adapters/redis"
	"github.com/rafaelleal24/apiweb/internal/core/logger"
	"github.com/rafaelleal24/apiweb/internal/core/port"
	"github.com/rafaelleal24/apiweb/internal/core/service"
)

// closers releases backing connections in reverse order of acquisition.
type closers []func() error

func (c closers) Close() error {
	var result *multierror.Error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		resources   closers
		checkers    []controllers.HealthChecker
		rateLimiter port.RateLimiterPort

		productRepository  port.ProductPort
		customerRepository port.CustomerPort
	)

	// storage backend
	switch cfg.Storage {
	case config.StorageMongo:
		mongoConn, err := mongo.NewConnection(cfg.Mongo)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
		}
		resources = append(resources, mongoConn.Close)
		checkers = append(checkers, controllers.HealthChecker{Name: "mongodb", Check: mongoConn.Ping})
		logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

		productRepository = repository.NewProductRepository(mongoConn.Database())
		customerRepository = repository.NewCustomerRepository(mongoConn.Database())
	default:
		productRepository = memory.NewProductRepository()
		customerRepository = memory.NewCustomerRepository()
	}
	logger.Info(ctx, "Storage backend selected", map[string]any{"backend": string(cfg.Storage)})

	// product cache and create rate limiter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg.Redis)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
		}
		resources = append(resources, redisClient.Close)
		checkers = append(checkers, controllers.HealthChecker{Name: "redis", Check: redisClient.Ping})
		logger.Info(ctx, "Connected to Redis", map[string]any{"cache_ttl": cfg.Redis.CacheTTL.String()})

		productCache := redis.NewCache[redis.CachedProduct](redisClient, redis.ProductCachePrefix)
		productRepository = redis.NewCachedProductRepository(productRepository, productCache, cfg.Redis.CacheTTL)
		rateLimiter = redis.NewRateLimiter(redisClient)
	}

	// domain events
	if cfg.RabbitMQ.Enabled {
		broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
		}
		resources = append(resources, broker.Close)
		checkers = append(checkers, controllers.HealthChecker{
			Name:  "rabbitmq",
			Check: func(context.Context) error { return broker.HealthCheck() },
		})
		logger.Info(ctx, "Connected to RabbitMQ", nil)

		productRepository = rabbitmq.NewPublishingProductRepository(productRepository, broker)
		customerRepository = rabbitmq.NewPublishingCustomerRepository(customerRepository, broker)
	}

	// services
	productService := service.NewProductService(productRepository)
	customerService := service.NewCustomerService(customerRepository)

	// controllers
	productController := controllers.NewProductController(productService)
	customerController := controllers.NewCustomerController(customerService)
	healthController := controllers.NewHealthController(checkers)

	// router
	router := http.NewRouter(healthController, productController, customerController, rateLimiter, cfg.HTTP.CreateRateLimit)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	serveErr := router.ListenAndServe(ctx, cfg.HTTP)

	if err := resources.Close(); err != nil {
		logger.Error(ctx, "Failed to release resources", err, nil)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
	}

	if serveErr != nil {
		fmt.Fprintln(os.Stderr, "http server error: "+serveErr.Error())
		os.Exit(1)
	}
}
