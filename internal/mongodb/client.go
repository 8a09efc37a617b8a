// Package mongodb implements the catalog's retrieval layer on top of a
// MongoDB products collection.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/wearlytic/catalog/internal/config"
	"github.com/wearlytic/catalog/internal/domain"
)

// Client wraps the MongoDB client and the products collection handle.
type Client struct {
	client *mongo.Client
	coll   *mongo.Collection
	config *config.MongoConfig
}

// NewClient connects to MongoDB and verifies the connection with a ping.
func NewClient(cfg *config.MongoConfig) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetTimeout(cfg.SocketTimeout).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxPoolSize(cfg.MaxPoolSize)

	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	client := &Client{
		client: mongoClient,
		coll:   mongoClient.Database(cfg.Database).Collection(cfg.Collection),
		config: cfg,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerSelectionTimeout)
	defer cancel()

	if pingErr := client.Ping(ctx); pingErr != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", pingErr)
	}

	return client, nil
}

// Ping verifies the MongoDB connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// HealthCheck reports whether the document store is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.Ping(ctx); err != nil {
		return fmt.Errorf("mongodb unreachable: %w", err)
	}
	return nil
}

// Collection returns the products collection handle.
func (c *Client) Collection() *mongo.Collection {
	return c.coll
}

// EnsureIndexes creates the weighted text index used for relevance search
// and the timestamp index used for default ordering. Safe to call on every
// startup; existing indexes are left alone.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "description", Value: "text"},
				{Key: "product_name", Value: "text"},
				{Key: "brand", Value: "text"},
				{Key: "category", Value: "text"},
				{Key: "material", Value: "text"},
			},
			Options: options.Index().
				SetName(domain.SearchIndexName).
				SetWeights(bson.D{
					{Key: "product_name", Value: domain.WeightProductName},
					{Key: "brand", Value: domain.WeightBrand},
					{Key: "description", Value: domain.WeightDescription},
					{Key: "category", Value: domain.WeightCategory},
					{Key: "material", Value: domain.WeightMaterial},
				}),
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	}

	if _, err := c.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}
