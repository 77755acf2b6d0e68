package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/campushq/studenthub/internal/config"
	"github.com/campushq/studenthub/internal/pkg/logger"
)

// MongoDB wraps the client and the student collection handle.
type MongoDB struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

// NewMongoDB connects to the configured MongoDB deployment and verifies
// the connection with a ping before returning.
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.Database.URI)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best-effort disconnect; the ping failure is the error that matters.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info().
		Str("database", cfg.Database.Database).
		Str("collection", cfg.Database.Collection).
		Msg("Connected to MongoDB")

	collection := client.Database(cfg.Database.Database).Collection(cfg.Database.Collection)

	return &MongoDB{
		Client:     client,
		Collection: collection,
	}, nil
}

// Close disconnects the underlying client.
func (m *MongoDB) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}
