package apiserver

import (
	"github.com/prometheus/client_golang/prometheus"
)

type estimateMetrics struct {
	estimates *prometheus.CounterVec
	items     *prometheus.CounterVec
}

func newEstimateMetrics(reg prometheus.Registerer) *estimateMetrics {
	return &estimateMetrics{
		estimates: registerCounterVec(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nlu_usage_estimates_total",
				Help: "Total number of cost estimates served",
			},
			[]string{"plan"},
		)),
		items: registerCounterVec(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nlu_usage_estimated_items_total",
				Help: "Total number of items priced by cost estimates",
			},
			[]string{"plan"},
		)),
	}
}

func (m *estimateMetrics) observe(plan string, items int64) {
	m.estimates.WithLabelValues(plan).Inc()
	m.items.WithLabelValues(plan).Add(float64(items))
}

// registerCounterVec returns the collector already registered under the same
// name if there is one.
func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}
