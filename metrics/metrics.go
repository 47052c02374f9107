// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus instruments recorded by package
// analysis and exposed by the HTTP server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for Runs.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder groups the instruments of one registry. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	// runs counts analysis operations by metric and result
	runs *prometheus.CounterVec

	// duration tracks operation latency by metric
	duration *prometheus.HistogramVec

	// pathsEnumerated counts geodesics enumerated across all operations
	pathsEnumerated prometheus.Counter

	// truncated counts enumerations stopped by the max-paths cap
	truncated prometheus.Counter

	// undefined counts nodes whose closeness is undefined (isolated)
	undefined prometheus.Counter
}

// New registers the socialgraph instruments on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "socialgraph_analysis_runs_total",
			Help: "Total analysis operations by metric and result",
		}, []string{"metric", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "socialgraph_analysis_duration_seconds",
			Help:    "Analysis operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
		}, []string{"metric"}),
		pathsEnumerated: f.NewCounter(prometheus.CounterOpts{
			Name: "socialgraph_paths_enumerated_total",
			Help: "Total shortest paths enumerated",
		}),
		truncated: f.NewCounter(prometheus.CounterOpts{
			Name: "socialgraph_enumerations_truncated_total",
			Help: "Enumerations stopped by the max-paths cap",
		}),
		undefined: f.NewCounter(prometheus.CounterOpts{
			Name: "socialgraph_closeness_undefined_total",
			Help: "Nodes whose closeness was undefined",
		}),
	}
}

// Observe records one finished operation.
func (r *Recorder) Observe(metric string, took time.Duration, err error) {
	if r == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.runs.WithLabelValues(metric, result).Inc()
	r.duration.WithLabelValues(metric).Observe(took.Seconds())
}

// Paths records n enumerated paths and whether the enumeration was truncated.
func (r *Recorder) Paths(n int, truncated bool) {
	if r == nil {
		return
	}
	r.pathsEnumerated.Add(float64(n))
	if truncated {
		r.truncated.Inc()
	}
}

// Undefined records n nodes with undefined closeness.
func (r *Recorder) Undefined(n int) {
	if r == nil || n == 0 {
		return
	}
	r.undefined.Add(float64(n))
}
