package search

import (
	"sort"

	"github.com/Hashimp6/broperty/internal/model"
)

// Mode is the ranking strategy of a search.
type Mode string

const (
	ModeProximity Mode = "proximity"
	ModeRecency   Mode = "recency"
)

// Filter returns the candidates satisfying the predicate, preserving order.
func Filter(candidates []model.Property, pred Predicate) []model.Property {
	out := make([]model.Property, 0, len(candidates))
	for i := range candidates {
		if pred.Matches(&candidates[i]) {
			out = append(out, candidates[i])
		}
	}
	return out
}

// Rank orders candidates for the given proximity constraint.
//
// With near set, candidates outside the radius are dropped, Distance is filled in
// and the result is ordered nearest first, newest first on equal distance.
// Without it the result is ordered newest first. ID descending breaks remaining ties
// so that paging over the result is deterministic.
func Rank(candidates []model.Property, near *Proximity) []model.Property {
	if near == nil {
		out := append([]model.Property(nil), candidates...)
		sort.SliceStable(out, func(i, j int) bool {
			return newer(&out[i], &out[j])
		})
		return out
	}

	out := make([]model.Property, 0, len(candidates))
	for _, p := range candidates {
		d, ok := near.Within(p.Location)
		if !ok {
			continue
		}
		dist := d
		p.Distance = &dist
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := *out[i].Distance, *out[j].Distance
		if di != dj {
			return di < dj
		}
		return newer(&out[i], &out[j])
	})
	return out
}

func newer(a, b *model.Property) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
