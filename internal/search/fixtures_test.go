package search

import (
	"fmt"
	"time"

	"github.com/Hashimp6/broperty/internal/model"
)

var baseTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func listing(id string, lng, lat float64, age time.Duration) model.Property {
	return model.Property{
		ID:           id,
		Title:        "Listing " + id,
		PropertyType: model.PropertyTypeApartment,
		ListingType:  model.ListingTypeSale,
		Status:       model.PropertyStatusAvailable,
		Price:        5000000,
		Address:      model.Address{City: "Thiruvananthapuram", State: "Kerala"},
		Location:     model.NewGeoPoint(lng, lat),
		Features:     model.Features{Bedrooms: 2, Bathrooms: 2, Area: 1200, AreaUnit: "sqft"},
		OwnerID:      "owner-" + id,
		CreatedAt:    baseTime.Add(-age),
	}
}

func apartments(n int) []model.Property {
	out := make([]model.Property, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, listing(fmt.Sprintf("apt-%02d", i), 76.95, 8.52, time.Duration(i)*time.Hour))
	}
	return out
}

func ids(props []model.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func ptr[T any](v T) *T { return &v }
