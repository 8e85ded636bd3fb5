package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection(UsersCollection)}
}

var _ repository.UserRepository = (*UserMongo)(nil)

// FindSummaries resolves every parseable ID with one $in query.
func (r *UserMongo) FindSummaries(ctx context.Context, ids []string) (map[string]model.UserSummary, error) {
	out := make(map[string]model.UserSummary, len(ids))
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return out, nil
	}

	cur, err := r.coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.ID.Hex()] = model.UserSummary{ID: d.ID.Hex(), Name: d.Name, Email: d.Email, Phone: d.Phone}
	}
	return out, nil
}

func (r *UserMongo) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var d userDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &model.User{
		UserSummary: model.UserSummary{ID: d.ID.Hex(), Name: d.Name, Email: d.Email, Phone: d.Phone},
		Role:        model.Role(d.Role),
	}, nil
}
