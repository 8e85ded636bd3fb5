package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Hashimp6/broperty/internal/config"
)

var mongoConnect = mongo.Connect

// NewMongo connects to MongoDB, pings the primary and returns the configured database.
// The caller disconnects the returned database's client.
func NewMongo(ctx context.Context, c config.MongoConfig) (*mongo.Database, error) {
	if c.URI == "" || c.Database == "" {
		return nil, errors.New("invalid mongo config: uri and database are required")
	}

	opts := options.Client().ApplyURI(c.URI)
	if c.Timeout > 0 {
		opts.SetConnectTimeout(c.Timeout).SetServerSelectionTimeout(c.Timeout)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("mongo options: %w", err)
	}

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(c.Database), nil
}
