package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type StorageBackend string

const (
	StorageMemory StorageBackend = "memory"
	StorageMongo  StorageBackend = "mongo"
)

type MongoConfig struct {
	URI                    string
	Database               string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	Enabled         bool
	URL             string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
	CacheTTL time.Duration
}

type HTTPConfig struct {
	Port            string
	BindInterface   string
	CreateRateLimit int
}

type Config struct {
	Storage  StorageBackend
	Mongo    MongoConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	HTTP     HTTPConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Storage: parseStorageBackend(getStringEnv("STORAGE_BACKEND", string(StorageMemory))),
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "apiweb"),
			Timeout:                getSecondsEnv("MONGO_TIMEOUT", 10),
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			ConnectTimeout:         getSecondsEnv("MONGO_CONNECT_TIMEOUT", 10),
			ServerSelectionTimeout: getSecondsEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5),
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			CacheTTL: getSecondsEnv("REDIS_CACHE_TTL", 300),
		},
		HTTP: HTTPConfig{
			Port:            getStringEnv("HTTP_PORT", "8080"),
			BindInterface:   getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
			CreateRateLimit: getIntEnv("RATE_LIMIT_CREATE", 30),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:    getBoolEnv("RABBITMQ_ENABLED", false),
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: getSecondsEnv("RABBITMQ_RETRY_DELAY", 1),
			ExchangeConfigs: []ExchangeConfig{
				{
					Name:       "exchange.product",
					Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
				{
					Name:       "exchange.customer",
					Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "apiweb"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}

// unknown values fall back to memory
func parseStorageBackend(value string) StorageBackend {
	switch StorageBackend(strings.ToLower(strings.TrimSpace(value))) {
	case StorageMongo:
		return StorageMongo
	default:
		return StorageMemory
	}
}
