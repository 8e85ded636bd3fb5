package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexModels lists the indexes each collection needs. $geoNear requires the
// 2dsphere index on properties.location.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		PropertiesCollection: {
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}, Options: options.Index().SetName("location_2dsphere")},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("createdAt_desc")},
			{Keys: bson.D{{Key: "owner", Value: 1}}, Options: options.Index().SetName("owner")},
		},
		ShowingsCollection: {
			{Keys: bson.D{{Key: "property", Value: 1}, {Key: "scheduledDate", Value: 1}}, Options: options.Index().SetName("property_scheduledDate")},
			{Keys: bson.D{{Key: "buyer", Value: 1}}, Options: options.Index().SetName("buyer")},
			{Keys: bson.D{{Key: "agent", Value: 1}}, Options: options.Index().SetName("agent")},
		},
	}
}

// EnsureIndexes creates the collections' indexes. Existing indexes are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexModels() {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}
