package postgres

import (
	"fmt"
	"strings"

	"github.com/Hashimp6/broperty/internal/search"
)

// whereBuilder accumulates AND-ed clauses with sequentially numbered placeholders.
type whereBuilder struct {
	clauses []string
	args    []any
}

// arg appends a bind value and returns its placeholder.
func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) add(clause string) {
	b.clauses = append(b.clauses, clause)
}

func (b *whereBuilder) String() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// compilePredicate translates a search predicate into SQL over the properties table.
func compilePredicate(p search.Predicate) *whereBuilder {
	b := &whereBuilder{}

	if len(p.PropertyType) > 0 {
		ph := make([]string, len(p.PropertyType))
		for i, t := range p.PropertyType {
			ph[i] = b.arg(string(t))
		}
		b.add("property_type IN (" + strings.Join(ph, ", ") + ")")
	}
	if p.ListingType != "" {
		b.add("listing_type = " + b.arg(string(p.ListingType)))
	}
	if p.Status != "" {
		b.add("status = " + b.arg(string(p.Status)))
	}
	if p.MinPrice != nil {
		b.add("price >= " + b.arg(*p.MinPrice))
	}
	if p.MaxPrice != nil {
		b.add("price <= " + b.arg(*p.MaxPrice))
	}
	if p.City != "" {
		b.add("city ILIKE " + b.arg(containsPattern(p.City)))
	}
	if p.State != "" {
		b.add("state ILIKE " + b.arg(containsPattern(p.State)))
	}
	if p.MinBedrooms != nil {
		b.add("bedrooms >= " + b.arg(*p.MinBedrooms))
	}
	if p.MinBathrooms != nil {
		b.add("bathrooms >= " + b.arg(*p.MinBathrooms))
	}
	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere in the value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// distanceExpr is the haversine distance in meters between the row location and a point.
func distanceExpr(latPH, lngPH string) string {
	return fmt.Sprintf(
		"(2 * %d * asin(least(1, sqrt("+
			"power(sin(radians(lat - %s) / 2), 2) + "+
			"cos(radians(%s)) * cos(radians(lat)) * power(sin(radians(lng - %s) / 2), 2)))))",
		int(search.EarthRadiusMeters), latPH, latPH, lngPH,
	)
}
