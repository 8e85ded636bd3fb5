package model

import "time"

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// ListingType tells whether a property is offered for sale or rent.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// PropertyStatus is the availability of a listing.
// Transitions are driven by owners, agents and admins; search only filters on it.
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusPending   PropertyStatus = "pending"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
)

// MediaKind is the resource type of an attachment.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// GeoPoint is a GeoJSON point. Coordinates are ordered [longitude, latitude].
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from longitude and latitude.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

// Lng returns the longitude.
func (g GeoPoint) Lng() float64 { return g.Coordinates[0] }

// Lat returns the latitude.
func (g GeoPoint) Lat() float64 { return g.Coordinates[1] }

// Valid reports whether both coordinates are within range.
func (g GeoPoint) Valid() bool {
	return g.Lng() >= -180 && g.Lng() <= 180 && g.Lat() >= -90 && g.Lat() <= 90
}

type Address struct {
	Street  string `json:"street" validate:"max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	ZipCode string `json:"zipCode" validate:"required,max=20"`
	Country string `json:"country" validate:"max=100"`
}

type Features struct {
	Bedrooms  int     `json:"bedrooms" validate:"gte=0,lte=100"`
	Bathrooms int     `json:"bathrooms" validate:"gte=0,lte=100"`
	Area      float64 `json:"area" validate:"gt=0"`
	AreaUnit  string  `json:"areaUnit" validate:"omitempty,oneof=sqft cent acre hectare sqm"`
	Parking   int     `json:"parking" validate:"gte=0"`
	YearBuilt *int    `json:"yearBuilt,omitempty" validate:"omitempty,gte=1800,lte=2100"`
	// LandType is required only when the property type is land.
	LandType *string `json:"landType,omitempty" validate:"omitempty,oneof=vacant with_house with_building agricultural"`
}

type Media struct {
	URL          string    `json:"url"`
	PublicID     string    `json:"publicId,omitempty"`
	ResourceType MediaKind `json:"resourceType"`
}

type ProjectDetails struct {
	BuilderName string `json:"builderName" validate:"max=200"`
	ProjectName string `json:"projectName" validate:"max=200"`
	Category    string `json:"category" validate:"omitempty,oneof=premium standard luxury affordable"`
}

// Property is a listing. Owner and Agent are populated only after hydration,
// Distance only in proximity searches (meters from the reference point).
type Property struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	PropertyType   PropertyType    `json:"propertyType"`
	ListingType    ListingType     `json:"listingType"`
	Status         PropertyStatus  `json:"status"`
	Price          float64         `json:"price"`
	Address        Address         `json:"address"`
	Location       GeoPoint        `json:"location"`
	Features       Features        `json:"features"`
	Amenities      []string        `json:"amenities"`
	Media          []Media         `json:"images"`
	ProjectDetails *ProjectDetails `json:"projectDetails,omitempty"`
	Featured       bool            `json:"featured"`
	OwnerID        string          `json:"ownerId"`
	AgentID        string          `json:"agentId,omitempty"`
	Owner          *UserSummary    `json:"owner,omitempty"`
	Agent          *UserSummary    `json:"agent,omitempty"`
	Distance       *float64        `json:"distance,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// PropertySummary is the projection of a property embedded in showings.
type PropertySummary struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Address Address `json:"address"`
	Price   float64 `json:"price"`
	OwnerID string  `json:"ownerId"`
}

// Summary projects the property for embedding in other resources.
func (p *Property) Summary() *PropertySummary {
	return &PropertySummary{
		ID:      p.ID,
		Title:   p.Title,
		Address: p.Address,
		Price:   p.Price,
		OwnerID: p.OwnerID,
	}
}
