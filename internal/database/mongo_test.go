package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hashimp6/broperty/internal/config"
)

func TestNewMongo(t *testing.T) {
	ctx := context.Background()

	t.Run("missing database", func(t *testing.T) {
		db, err := NewMongo(ctx, config.MongoConfig{URI: "mongodb://localhost:27017"})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("malformed uri", func(t *testing.T) {
		db, err := NewMongo(ctx, config.MongoConfig{URI: "postgres://localhost", Database: "broperty"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mongo options")
		assert.Nil(t, db)
	})

	t.Run("connect error", func(t *testing.T) {
		orig := mongoConnect
		var got *options.ClientOptions
		mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
			got = opts[0]
			return nil, errors.New("no reachable servers")
		}
		defer func() { mongoConnect = orig }()

		db, err := NewMongo(ctx, config.MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "broperty",
			Timeout:  3 * time.Second,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mongo connect: no reachable servers")
		assert.Nil(t, db)

		require.NotNil(t, got)
		require.NotNil(t, got.ServerSelectionTimeout)
		assert.Equal(t, 3*time.Second, *got.ServerSelectionTimeout)
	})
}
