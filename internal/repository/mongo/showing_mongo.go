package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

type ShowingMongo struct {
	coll *mongo.Collection
}

func NewShowingMongo(db *mongo.Database) *ShowingMongo {
	return &ShowingMongo{coll: db.Collection(ShowingsCollection)}
}

var _ repository.ShowingRepository = (*ShowingMongo)(nil)

func (r *ShowingMongo) Create(ctx context.Context, s *model.Showing) (*model.Showing, error) {
	d, err := toShowingDoc(s)
	if err != nil {
		return nil, err
	}
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return nil, err
	}
	out := d.model()
	return &out, nil
}

func (r *ShowingMongo) FindByID(ctx context.Context, id string) (*model.Showing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *ShowingMongo) List(ctx context.Context, f repository.ShowingFilter) ([]model.Showing, error) {
	filter, ok := showingFilter(f)
	if !ok {
		return []model.Showing{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []showingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.Showing, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].model())
	}
	return out, nil
}

func (r *ShowingMongo) Update(ctx context.Context, s *model.Showing) (*model.Showing, error) {
	if _, err := primitive.ObjectIDFromHex(s.ID); err != nil {
		return nil, repository.ErrNotFound
	}
	d, err := toShowingDoc(s)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: d.ID}}, d)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}
	out := d.model()
	return &out, nil
}

func (r *ShowingMongo) FindActiveBetween(ctx context.Context, propertyID string, from, to time.Time) (*model.Showing, error) {
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, activeBetweenFilter(oid, from, to))
}

func (r *ShowingMongo) findOne(ctx context.Context, filter bson.D) (*model.Showing, error) {
	var d showingDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	s := d.model()
	return &s, nil
}

// showingFilter reports false when the filter can match nothing.
func showingFilter(f repository.ShowingFilter) (bson.D, bool) {
	filter := bson.D{}
	if f.BuyerID != "" {
		oid, err := primitive.ObjectIDFromHex(f.BuyerID)
		if err != nil {
			return nil, false
		}
		filter = append(filter, bson.E{Key: "buyer", Value: oid})
	}
	if f.AgentID != "" {
		oid, err := primitive.ObjectIDFromHex(f.AgentID)
		if err != nil {
			return nil, false
		}
		filter = append(filter, bson.E{Key: "agent", Value: oid})
	}
	if f.Scoped || len(f.PropertyIDs) > 0 {
		oids := objectIDs(f.PropertyIDs)
		if len(oids) == 0 {
			return nil, false
		}
		filter = append(filter, bson.E{Key: "property", Value: bson.D{{Key: "$in", Value: oids}}})
	}
	return filter, true
}

func activeBetweenFilter(propertyID primitive.ObjectID, from, to time.Time) bson.D {
	return bson.D{
		{Key: "property", Value: propertyID},
		{Key: "scheduledDate", Value: bson.D{{Key: "$gte", Value: from}, {Key: "$lte", Value: to}}},
		{Key: "status", Value: bson.D{{Key: "$in", Value: bson.A{
			string(model.ShowingStatusPending), string(model.ShowingStatusConfirmed),
		}}}},
	}
}
