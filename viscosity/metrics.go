package viscosity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// correctTotal counts field recomputations per model type
	correctTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "viscosity_correct_total",
		Help: "Total number of Correct calls by model type",
	}, []string{"model"})

	// readTotal counts coefficient reads by model type and result
	readTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "viscosity_read_total",
		Help: "Total number of coefficient reads by model type and result",
	}, []string{"model", "result"})

	// clampedTotal counts table lookups that saturated at a table end
	clampedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "helium_lookup_clamped_total",
		Help: "Property lookups with a temperature outside the tabulated range, by side",
	}, []string{"side"})
)

const (
	resultOk       = "ok"
	resultRejected = "rejected"
)
