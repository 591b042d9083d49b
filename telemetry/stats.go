package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// summarize returns the mean and the requested quantiles of the samples.
// Input is copied before sorting; empty input yields zeros.
func summarize(samples []float64, quantiles ...float64) (mean float64, qs []float64) {
	qs = make([]float64, len(quantiles))
	if len(samples) == 0 {
		return 0, qs
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	for i, q := range quantiles {
		qs[i] = stat.Quantile(q, stat.Empirical, sorted, nil)
	}
	return mean, qs
}
