package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hashimp6/broperty/internal/model"
)

// Collection names.
const (
	PropertiesCollection = "properties"
	UsersCollection      = "users"
	ShowingsCollection   = "showings"
)

type propertyDoc struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty"`
	Title          string                `bson:"title"`
	Description    string                `bson:"description"`
	PropertyType   string                `bson:"propertyType"`
	ListingType    string                `bson:"listingType"`
	Status         string                `bson:"status"`
	Price          float64               `bson:"price"`
	Address        addressDoc            `bson:"address"`
	Location       model.GeoPoint        `bson:"location"`
	Features       featuresDoc           `bson:"features"`
	Amenities      []string              `bson:"amenities"`
	Images         []mediaDoc            `bson:"images"`
	ProjectDetails *model.ProjectDetails `bson:"projectDetails,omitempty"`
	Featured       bool                  `bson:"featured"`
	Owner          primitive.ObjectID    `bson:"owner"`
	Agent          *primitive.ObjectID   `bson:"agent,omitempty"`
	Distance       *float64              `bson:"distance,omitempty"`
	CreatedAt      time.Time             `bson:"createdAt"`
	UpdatedAt      time.Time             `bson:"updatedAt"`
}

type addressDoc struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	ZipCode string `bson:"zipCode"`
	Country string `bson:"country"`
}

type featuresDoc struct {
	Bedrooms  int     `bson:"bedrooms"`
	Bathrooms int     `bson:"bathrooms"`
	Area      float64 `bson:"area"`
	AreaUnit  string  `bson:"areaUnit"`
	Parking   int     `bson:"parking"`
	YearBuilt *int    `bson:"yearBuilt,omitempty"`
	LandType  *string `bson:"landType,omitempty"`
}

type mediaDoc struct {
	URL          string `bson:"url"`
	PublicID     string `bson:"public_id"`
	ResourceType string `bson:"resource_type"`
}

type userDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Phone string             `bson:"phone"`
	Role  string             `bson:"role"`
}

type showingDoc struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Property      primitive.ObjectID  `bson:"property"`
	Buyer         primitive.ObjectID  `bson:"buyer"`
	Agent         *primitive.ObjectID `bson:"agent,omitempty"`
	ScheduledDate time.Time           `bson:"scheduledDate"`
	Duration      int                 `bson:"duration"`
	Status        string              `bson:"status"`
	Notes         string              `bson:"notes,omitempty"`
	Feedback      *feedbackDoc        `bson:"feedback,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt"`
}

type feedbackDoc struct {
	Rating  int    `bson:"rating"`
	Comment string `bson:"comment"`
}

func objectID(field, hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s %q is not an object id: %w", field, hex, err)
	}
	return oid, nil
}

func optionalObjectID(field, hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}
	oid, err := objectID(field, hex)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

func hexOf(oid *primitive.ObjectID) string {
	if oid == nil {
		return ""
	}
	return oid.Hex()
}

// objectIDs converts the parseable IDs and drops the rest.
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

func toPropertyDoc(p *model.Property) (*propertyDoc, error) {
	d := &propertyDoc{
		Title:        p.Title,
		Description:  p.Description,
		PropertyType: string(p.PropertyType),
		ListingType:  string(p.ListingType),
		Status:       string(p.Status),
		Price:        p.Price,
		Address: addressDoc{
			Street:  p.Address.Street,
			City:    p.Address.City,
			State:   p.Address.State,
			ZipCode: p.Address.ZipCode,
			Country: p.Address.Country,
		},
		Location: model.NewGeoPoint(p.Location.Lng(), p.Location.Lat()),
		Features: featuresDoc{
			Bedrooms:  p.Features.Bedrooms,
			Bathrooms: p.Features.Bathrooms,
			Area:      p.Features.Area,
			AreaUnit:  p.Features.AreaUnit,
			Parking:   p.Features.Parking,
			YearBuilt: p.Features.YearBuilt,
			LandType:  p.Features.LandType,
		},
		Amenities:      append([]string{}, p.Amenities...),
		Images:         make([]mediaDoc, 0, len(p.Media)),
		ProjectDetails: p.ProjectDetails,
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for _, m := range p.Media {
		d.Images = append(d.Images, toMediaDoc(m))
	}

	var err error
	if p.ID != "" {
		if d.ID, err = objectID("property id", p.ID); err != nil {
			return nil, err
		}
	}
	if d.Owner, err = objectID("owner id", p.OwnerID); err != nil {
		return nil, err
	}
	if d.Agent, err = optionalObjectID("agent id", p.AgentID); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *propertyDoc) model() model.Property {
	p := model.Property{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		PropertyType: model.PropertyType(d.PropertyType),
		ListingType:  model.ListingType(d.ListingType),
		Status:       model.PropertyStatus(d.Status),
		Price:        d.Price,
		Address: model.Address{
			Street:  d.Address.Street,
			City:    d.Address.City,
			State:   d.Address.State,
			ZipCode: d.Address.ZipCode,
			Country: d.Address.Country,
		},
		Location: model.NewGeoPoint(d.Location.Lng(), d.Location.Lat()),
		Features: model.Features{
			Bedrooms:  d.Features.Bedrooms,
			Bathrooms: d.Features.Bathrooms,
			Area:      d.Features.Area,
			AreaUnit:  d.Features.AreaUnit,
			Parking:   d.Features.Parking,
			YearBuilt: d.Features.YearBuilt,
			LandType:  d.Features.LandType,
		},
		Amenities:      append([]string{}, d.Amenities...),
		Media:          make([]model.Media, 0, len(d.Images)),
		ProjectDetails: d.ProjectDetails,
		Featured:       d.Featured,
		OwnerID:        d.Owner.Hex(),
		AgentID:        hexOf(d.Agent),
		Distance:       d.Distance,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
	for _, m := range d.Images {
		p.Media = append(p.Media, model.Media{
			URL:          m.URL,
			PublicID:     m.PublicID,
			ResourceType: model.MediaKind(m.ResourceType),
		})
	}
	return p
}

func toMediaDoc(m model.Media) mediaDoc {
	return mediaDoc{URL: m.URL, PublicID: m.PublicID, ResourceType: string(m.ResourceType)}
}

func toShowingDoc(s *model.Showing) (*showingDoc, error) {
	d := &showingDoc{
		ScheduledDate: s.ScheduledAt,
		Duration:      s.DurationMinutes,
		Status:        string(s.Status),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.Feedback != nil {
		d.Feedback = &feedbackDoc{Rating: s.Feedback.Rating, Comment: s.Feedback.Comment}
	}

	var err error
	if s.ID != "" {
		if d.ID, err = objectID("showing id", s.ID); err != nil {
			return nil, err
		}
	}
	if d.Property, err = objectID("property id", s.PropertyID); err != nil {
		return nil, err
	}
	if d.Buyer, err = objectID("buyer id", s.BuyerID); err != nil {
		return nil, err
	}
	if d.Agent, err = optionalObjectID("agent id", s.AgentID); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *showingDoc) model() model.Showing {
	s := model.Showing{
		ID:              d.ID.Hex(),
		PropertyID:      d.Property.Hex(),
		BuyerID:         d.Buyer.Hex(),
		AgentID:         hexOf(d.Agent),
		ScheduledAt:     d.ScheduledDate.UTC(),
		DurationMinutes: d.Duration,
		Status:          model.ShowingStatus(d.Status),
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
	if d.Feedback != nil {
		s.Feedback = &model.Feedback{Rating: d.Feedback.Rating, Comment: d.Feedback.Comment}
	}
	return s
}
