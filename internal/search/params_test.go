package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hashimp6/broperty/internal/model"
)

func TestParamsCriteria_Defaults(t *testing.T) {
	c, err := Params{}.Criteria(DefaultDefaults)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 10, c.Limit)
	assert.Equal(t, 10.0, c.RadiusKm)
	assert.Nil(t, c.Near)
	assert.Nil(t, c.MinPrice)
	assert.Nil(t, c.MinBedrooms)
}

func TestParamsCriteria_Parses(t *testing.T) {
	c, err := Params{
		PropertyType: "apartment",
		ListingType:  "rent",
		Status:       "available",
		MinPrice:     "1000",
		MaxPrice:     " 25000.5 ",
		Bedrooms:     "2",
		Bathrooms:    "1",
		City:         "ban",
		State:        "Karnataka",
		Lat:          "8.52",
		Lng:          "76.95",
		Radius:       "2.5",
		Page:         "3",
		Limit:        "20",
	}.Criteria(DefaultDefaults)
	require.NoError(t, err)

	assert.Equal(t, model.PropertyTypeApartment, c.PropertyType)
	assert.Equal(t, model.ListingTypeRent, c.ListingType)
	assert.Equal(t, model.PropertyStatusAvailable, c.Status)
	assert.Equal(t, 1000.0, *c.MinPrice)
	assert.Equal(t, 25000.5, *c.MaxPrice)
	assert.Equal(t, 2, *c.MinBedrooms)
	assert.Equal(t, 1, *c.MinBathrooms)
	assert.Equal(t, "ban", c.City)
	require.NotNil(t, c.Near)
	assert.Equal(t, 76.95, c.Near.Lng())
	assert.Equal(t, 8.52, c.Near.Lat())
	assert.Equal(t, 2.5, c.RadiusKm)
	assert.Equal(t, 3, c.Page)
	assert.Equal(t, 20, c.Limit)
}

func TestParamsCriteria_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		field      string
		invalidArg bool
	}{
		{name: "NaN price", params: Params{MinPrice: "NaN"}, field: "minPrice"},
		{name: "infinite price", params: Params{MaxPrice: "+Inf"}, field: "maxPrice"},
		{name: "text price", params: Params{MaxPrice: "cheap"}, field: "maxPrice"},
		{name: "fractional bedrooms", params: Params{Bedrooms: "2.5"}, field: "bedrooms"},
		{name: "negative bathrooms", params: Params{Bathrooms: "-1"}, field: "bathrooms"},
		{name: "unknown property type", params: Params{PropertyType: "castle"}, field: "propertyType"},
		{name: "unknown listing type", params: Params{ListingType: "lease"}, field: "listingType"},
		{name: "unknown status", params: Params{Status: "gone"}, field: "status"},
		{name: "lat without lng", params: Params{Lat: "8.52"}, field: "lat", invalidArg: true},
		{name: "lng without lat", params: Params{Lng: "76.95"}, field: "lat", invalidArg: true},
		{name: "non numeric lat", params: Params{Lat: "north", Lng: "76.95"}, field: "lat"},
		{name: "lat out of range", params: Params{Lat: "91", Lng: "76.95"}, field: "lat"},
		{name: "lng out of range", params: Params{Lat: "8", Lng: "-181"}, field: "lng"},
		{name: "proximity without point", params: Params{Mode: "proximity"}, field: "mode", invalidArg: true},
		{name: "zero radius", params: Params{Radius: "0"}, field: "radius"},
		{name: "NaN radius", params: Params{Radius: "NaN"}, field: "radius"},
		{name: "zero page", params: Params{Page: "0"}, field: "page"},
		{name: "text limit", params: Params{Limit: "ten"}, field: "limit"},
		{name: "limit above maximum", params: Params{Limit: "101"}, field: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.params.Criteria(DefaultDefaults)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.invalidArg, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestParamsCriteria_RecencyModeIgnoresPoint(t *testing.T) {
	c, err := Params{Lat: "8.52", Lng: "76.95", Mode: "recency"}.Criteria(DefaultDefaults)
	require.NoError(t, err)
	assert.Nil(t, c.Near)
}

func TestParamsCriteria_ConfiguredDefaults(t *testing.T) {
	c, err := Params{Lat: "8.52", Lng: "76.95"}.Criteria(Defaults{RadiusKm: 25, PageSize: 5, MaxPageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 25.0, c.RadiusKm)
	assert.Equal(t, 5, c.Limit)
}
