package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Hashimp6/broperty/internal/search"
)

// SearchMetrics counts property searches by ranking strategy.
type SearchMetrics struct {
	searches *prometheus.CounterVec
}

// NewSearchMetrics registers the search counters on reg.
func NewSearchMetrics(reg prometheus.Registerer) (*SearchMetrics, error) {
	m := &SearchMetrics{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "property_searches_total",
				Help: "Total number of property searches served, by ranking mode.",
			},
			[]string{"mode"},
		),
	}
	if err := reg.Register(m.searches); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *SearchMetrics) observe(mode search.Mode) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(string(mode)).Inc()
}
