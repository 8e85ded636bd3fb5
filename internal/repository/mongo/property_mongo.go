package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/search"
)

// PropertyMongo stores properties in a collection with a 2dsphere index on location.
type PropertyMongo struct {
	coll *mongo.Collection
}

func NewPropertyMongo(db *mongo.Database) *PropertyMongo {
	return &PropertyMongo{coll: db.Collection(PropertiesCollection)}
}

var _ repository.PropertyRepository = (*PropertyMongo)(nil)

// Search runs a find in recency mode and a $geoNear aggregation in proximity mode.
func (r *PropertyMongo) Search(ctx context.Context, q search.Query) (*repository.PageResult[model.Property], error) {
	filter := propertyFilter(q.Predicate)

	if q.Near == nil {
		total, err := r.coll.CountDocuments(ctx, filter)
		if err != nil {
			return nil, err
		}
		cur, err := r.coll.Find(ctx, filter, recencyFindOptions(q.Page))
		if err != nil {
			return nil, err
		}
		var docs []propertyDoc
		if err := cur.All(ctx, &docs); err != nil {
			return nil, err
		}
		return &repository.PageResult[model.Property]{Items: models(docs), Total: int(total)}, nil
	}

	cur, err := r.coll.Aggregate(ctx, proximityPipeline(filter, q.Near, q.Page))
	if err != nil {
		return nil, err
	}
	var facets []struct {
		Items []propertyDoc `bson:"items"`
		Total []struct {
			N int `bson:"n"`
		} `bson:"total"`
	}
	if err := cur.All(ctx, &facets); err != nil {
		return nil, err
	}

	res := &repository.PageResult[model.Property]{Items: []model.Property{}}
	if len(facets) > 0 {
		res.Items = models(facets[0].Items)
		if len(facets[0].Total) > 0 {
			res.Total = facets[0].Total[0].N
		}
	}
	return res, nil
}

func (r *PropertyMongo) FindByID(ctx context.Context, id string) (*model.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var d propertyDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p := d.model()
	return &p, nil
}

// Create inserts the property under a fresh ObjectID when p.ID is empty.
func (r *PropertyMongo) Create(ctx context.Context, p *model.Property) (*model.Property, error) {
	d, err := toPropertyDoc(p)
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

func (r *PropertyMongo) Update(ctx context.Context, p *model.Property) (*model.Property, error) {
	if _, err := primitive.ObjectIDFromHex(p.ID); err != nil {
		return nil, repository.ErrNotFound
	}
	d, err := toPropertyDoc(p)
	if err != nil {
		return nil, err
	}
	d.Distance = nil
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

func (r *PropertyMongo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PropertyMongo) AppendMedia(ctx context.Context, id string, media []model.Media) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	docs := make([]mediaDoc, 0, len(media))
	for _, m := range media {
		docs = append(docs, toMediaDoc(m))
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "images", Value: bson.D{{Key: "$each", Value: docs}}}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PropertyMongo) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []string{}, nil
	}
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{{Key: "owner", Value: oid}}, opts)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID.Hex())
	}
	return ids, nil
}

// propertyFilter translates a predicate into a bson filter document.
func propertyFilter(p search.Predicate) bson.D {
	f := bson.D{}

	switch len(p.PropertyType) {
	case 0:
	case 1:
		f = append(f, bson.E{Key: "propertyType", Value: string(p.PropertyType[0])})
	default:
		types := make(bson.A, 0, len(p.PropertyType))
		for _, t := range p.PropertyType {
			types = append(types, string(t))
		}
		f = append(f, bson.E{Key: "propertyType", Value: bson.D{{Key: "$in", Value: types}}})
	}
	if p.ListingType != "" {
		f = append(f, bson.E{Key: "listingType", Value: string(p.ListingType)})
	}
	if p.Status != "" {
		f = append(f, bson.E{Key: "status", Value: string(p.Status)})
	}
	if p.MinPrice != nil || p.MaxPrice != nil {
		price := bson.D{}
		if p.MinPrice != nil {
			price = append(price, bson.E{Key: "$gte", Value: *p.MinPrice})
		}
		if p.MaxPrice != nil {
			price = append(price, bson.E{Key: "$lte", Value: *p.MaxPrice})
		}
		f = append(f, bson.E{Key: "price", Value: price})
	}
	if p.City != "" {
		f = append(f, bson.E{Key: "address.city", Value: containsRegex(p.City)})
	}
	if p.State != "" {
		f = append(f, bson.E{Key: "address.state", Value: containsRegex(p.State)})
	}
	if p.MinBedrooms != nil {
		f = append(f, bson.E{Key: "features.bedrooms", Value: bson.D{{Key: "$gte", Value: *p.MinBedrooms}}})
	}
	if p.MinBathrooms != nil {
		f = append(f, bson.E{Key: "features.bathrooms", Value: bson.D{{Key: "$gte", Value: *p.MinBathrooms}}})
	}
	return f
}

func containsRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func recencyFindOptions(pg search.Page) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(pg.Skip())).
		SetLimit(int64(pg.Size))
}

// proximityPipeline ranks by spherical distance within the radius and returns
// the page window and the total count in one facet document.
func proximityPipeline(filter bson.D, near *search.Proximity, pg search.Page) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: near.Center},
			{Key: "key", Value: "location"},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: near.RadiusMeters},
			{Key: "spherical", Value: true},
			{Key: "query", Value: filter},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "distance", Value: 1},
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		{{Key: "$facet", Value: bson.D{
			{Key: "items", Value: bson.A{
				bson.D{{Key: "$skip", Value: int64(pg.Skip())}},
				bson.D{{Key: "$limit", Value: int64(pg.Size)}},
			}},
			{Key: "total", Value: bson.A{
				bson.D{{Key: "$count", Value: "n"}},
			}},
		}}},
	}
}

func models(docs []propertyDoc) []model.Property {
	out := make([]model.Property, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].model())
	}
	return out
}
