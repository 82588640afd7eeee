// SPDX-License-Identifier: MIT

package survey

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the survey's Prometheus collectors.
type Metrics struct {
	// Candidates counts classified candidates by Verdict.
	Candidates *prometheus.CounterVec

	// Duration observes the wall time spent on one candidate.
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Candidates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "primegraph_survey_candidates_total",
			Help: "Candidates classified by verdict",
		}, []string{"verdict"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "primegraph_survey_candidate_seconds",
			Help:    "Time spent classifying one candidate",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		}),
	}
}

// observe records one finished candidate.
func (m *Metrics) observe(o Outcome) {
	if m == nil {
		return
	}
	m.Candidates.WithLabelValues(o.Verdict()).Inc()
	m.Duration.Observe(o.Elapsed.Seconds())
}
