package search

import (
	"math"

	"github.com/Hashimp6/broperty/internal/model"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance between two points in meters.
func Haversine(a, b model.GeoPoint) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLng := (b.Lng() - a.Lng()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push h slightly past 1 for antipodal points.
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Proximity selects nearest-first ranking around Center, bounded by RadiusMeters (inclusive).
type Proximity struct {
	Center       model.GeoPoint
	RadiusMeters float64
}

// Within reports whether p lies inside the radius and returns its distance.
func (x Proximity) Within(p model.GeoPoint) (float64, bool) {
	d := Haversine(x.Center, p)
	return d, d <= x.RadiusMeters
}
