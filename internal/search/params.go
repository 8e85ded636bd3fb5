package search

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Hashimp6/broperty/internal/model"
)

// Defaults holds the configurable fallbacks applied to missing parameters.
type Defaults struct {
	RadiusKm    float64
	PageSize    int
	MaxPageSize int
}

// DefaultDefaults mirrors the public API documentation: 10 km, 10 per page, at most 100.
var DefaultDefaults = Defaults{RadiusKm: 10, PageSize: 10, MaxPageSize: 100}

// Params are the raw query-string values of GET /properties.
type Params struct {
	PropertyType string `query:"propertyType" validate:"omitempty,oneof=house apartment villa land commercial"`
	ListingType  string `query:"listingType" validate:"omitempty,oneof=sale rent"`
	Status       string `query:"status" validate:"omitempty,oneof=available pending sold rented"`
	MinPrice     string `query:"minPrice"`
	MaxPrice     string `query:"maxPrice"`
	Bedrooms     string `query:"bedrooms"`
	Bathrooms    string `query:"bathrooms"`
	City         string `query:"city"`
	State        string `query:"state"`
	Lat          string `query:"lat"`
	Lng          string `query:"lng"`
	Radius       string `query:"radius"`
	Page         string `query:"page"`
	Limit        string `query:"limit"`
	Mode         string `query:"mode" validate:"omitempty,oneof=proximity recency"`
}

// Criteria are validated, typed search parameters.
type Criteria struct {
	PropertyType model.PropertyType
	ListingType  model.ListingType
	Status       model.PropertyStatus
	MinPrice     *float64
	MaxPrice     *float64
	City         string
	State        string
	MinBedrooms  *int
	MinBathrooms *int
	Near         *model.GeoPoint
	RadiusKm     float64
	Page         int
	Limit        int
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("query"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Criteria validates the raw parameters once and returns typed criteria.
// Any malformed value yields a *ValidationError; nothing is coerced or ignored.
func (p Params) Criteria(d Defaults) (Criteria, error) {
	p = p.trimmed()

	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return Criteria{}, invalid(fe.Field(), "must be one of [%s]", fe.Param())
		}
		return Criteria{}, err
	}

	c := Criteria{
		PropertyType: model.PropertyType(p.PropertyType),
		ListingType:  model.ListingType(p.ListingType),
		Status:       model.PropertyStatus(p.Status),
		City:         p.City,
		State:        p.State,
	}

	var err error
	if c.MinPrice, err = parseFloat("minPrice", p.MinPrice); err != nil {
		return Criteria{}, err
	}
	if c.MaxPrice, err = parseFloat("maxPrice", p.MaxPrice); err != nil {
		return Criteria{}, err
	}
	if c.MinBedrooms, err = parseCount("bedrooms", p.Bedrooms); err != nil {
		return Criteria{}, err
	}
	if c.MinBathrooms, err = parseCount("bathrooms", p.Bathrooms); err != nil {
		return Criteria{}, err
	}

	if c.Near, err = parsePoint(p.Lat, p.Lng); err != nil {
		return Criteria{}, err
	}
	switch Mode(p.Mode) {
	case ModeProximity:
		if c.Near == nil {
			return Criteria{}, &ValidationError{
				Field:   "mode",
				Message: "proximity mode requires lat and lng",
				Err:     ErrInvalidArgument,
			}
		}
	case ModeRecency:
		c.Near = nil
	}

	c.RadiusKm = d.RadiusKm
	if radius, err := parseFloat("radius", p.Radius); err != nil {
		return Criteria{}, err
	} else if radius != nil {
		if *radius <= 0 {
			return Criteria{}, invalid("radius", "must be greater than zero")
		}
		c.RadiusKm = *radius
	}

	if c.Page, err = parsePositive("page", p.Page, 1); err != nil {
		return Criteria{}, err
	}
	if c.Limit, err = parsePositive("limit", p.Limit, d.PageSize); err != nil {
		return Criteria{}, err
	}
	if d.MaxPageSize > 0 && c.Limit > d.MaxPageSize {
		return Criteria{}, invalid("limit", "must not exceed %d", d.MaxPageSize)
	}

	return c, nil
}

func (p Params) trimmed() Params {
	v := reflect.ValueOf(&p).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		f.SetString(strings.TrimSpace(f.String()))
	}
	return p
}

func parseFloat(field, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, invalid(field, "must be a finite number, got %q", raw)
	}
	return &v, nil
}

func parseCount(field, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalid(field, "must be an integer, got %q", raw)
	}
	if v < 0 {
		return nil, invalid(field, "must not be negative")
	}
	return &v, nil
}

func parsePositive(field, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid(field, "must be an integer, got %q", raw)
	}
	if v < 1 {
		return 0, invalid(field, "must be a positive integer")
	}
	return v, nil
}

func parsePoint(rawLat, rawLng string) (*model.GeoPoint, error) {
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}
	if rawLat == "" || rawLng == "" {
		return nil, &ValidationError{
			Field:   "lat",
			Message: "lat and lng must be supplied together",
			Err:     ErrInvalidArgument,
		}
	}
	lat, err := parseFloat("lat", rawLat)
	if err != nil {
		return nil, err
	}
	lng, err := parseFloat("lng", rawLng)
	if err != nil {
		return nil, err
	}
	if *lat < -90 || *lat > 90 {
		return nil, invalid("lat", "must be between -90 and 90")
	}
	if *lng < -180 || *lng > 180 {
		return nil, invalid("lng", "must be between -180 and 180")
	}
	pt := model.NewGeoPoint(*lng, *lat)
	return &pt, nil
}

// String renders criteria for logs.
func (c Criteria) String() string {
	mode := ModeRecency
	if c.Near != nil {
		mode = ModeProximity
	}
	return fmt.Sprintf("mode=%s page=%d limit=%d", mode, c.Page, c.Limit)
}
