package search

import (
	"strings"

	"github.com/Hashimp6/broperty/internal/model"
)

// Predicate is the compiled conjunction of filter criteria.
// Zero values and nil pointers mean "no constraint".
type Predicate struct {
	PropertyType []model.PropertyType
	ListingType  model.ListingType
	Status       model.PropertyStatus
	MinPrice     *float64
	MaxPrice     *float64
	City         string
	State        string
	MinBedrooms  *int
	MinBathrooms *int
}

// Matches evaluates the predicate against a property in memory.
func (p Predicate) Matches(prop *model.Property) bool {
	if len(p.PropertyType) > 0 && !containsType(p.PropertyType, prop.PropertyType) {
		return false
	}
	if p.ListingType != "" && prop.ListingType != p.ListingType {
		return false
	}
	if p.Status != "" && prop.Status != p.Status {
		return false
	}
	if p.MinPrice != nil && prop.Price < *p.MinPrice {
		return false
	}
	if p.MaxPrice != nil && prop.Price > *p.MaxPrice {
		return false
	}
	if p.City != "" && !containsFold(prop.Address.City, p.City) {
		return false
	}
	if p.State != "" && !containsFold(prop.Address.State, p.State) {
		return false
	}
	if p.MinBedrooms != nil && prop.Features.Bedrooms < *p.MinBedrooms {
		return false
	}
	if p.MinBathrooms != nil && prop.Features.Bathrooms < *p.MinBathrooms {
		return false
	}
	return true
}

// Empty reports whether the predicate places no constraint at all.
func (p Predicate) Empty() bool {
	return len(p.PropertyType) == 0 && p.ListingType == "" && p.Status == "" &&
		p.MinPrice == nil && p.MaxPrice == nil && p.City == "" && p.State == "" &&
		p.MinBedrooms == nil && p.MinBathrooms == nil
}

func containsType(types []model.PropertyType, t model.PropertyType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Query is a compiled search: the predicate, an optional proximity constraint and the page.
type Query struct {
	Predicate Predicate
	Near      *Proximity
	Page      Page
}

// Mode returns the ranking strategy the query selects.
func (q Query) Mode() Mode {
	if q.Near != nil {
		return ModeProximity
	}
	return ModeRecency
}

// Compile turns validated criteria into a query usable by every store.
func Compile(c Criteria) Query {
	pred := Predicate{
		ListingType:  c.ListingType,
		Status:       c.Status,
		MinPrice:     c.MinPrice,
		MaxPrice:     c.MaxPrice,
		City:         c.City,
		State:        c.State,
		MinBedrooms:  c.MinBedrooms,
		MinBathrooms: c.MinBathrooms,
	}
	if c.PropertyType != "" {
		pred.PropertyType = []model.PropertyType{c.PropertyType}
	}

	q := Query{
		Predicate: pred,
		Page:      Page{Number: c.Page, Size: c.Limit},
	}
	if c.Near != nil {
		q.Near = &Proximity{
			Center:       *c.Near,
			RadiusMeters: c.RadiusKm * 1000,
		}
	}
	return q
}
