package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/apiweb/internal/adapters/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const disconnectTimeout = 10 * time.Second

// Connection owns the driver client and the configured database.
type Connection struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewConnection(cfg config.MongoConfig) (*Connection, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	conn := &Connection{client: client, database: client.Database(cfg.Database)}
	if err := conn.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return conn, nil
}

func (c *Connection) Database() *mongo.Database {
	return c.database
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// EnsureIndexes creates the lookup indexes on the domain keys. They are not unique,
// duplicate identifiers are allowed and resolve to the earliest insert.
func (c *Connection) EnsureIndexes(ctx context.Context) error {
	lookups := map[string]string{
		"products":  "product_id",
		"customers": "customer_id",
	}

	for collection, field := range lookups {
		_, err := c.database.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}, {Key: "_id", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s.%s: %w", collection, field, err)
		}
	}

	return nil
}

func (c *Connection) Close() error {
	if c == nil || c.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}
