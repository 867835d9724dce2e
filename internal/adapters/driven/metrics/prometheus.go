package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetricsRecorder records metrics using Prometheus.
type PrometheusMetricsRecorder struct {
	filterApplicationsTotal  *prometheus.CounterVec
	attributesRemovedTotal   prometheus.Counter
	requestedDefaultedTotal  *prometheus.CounterVec
	attributesDefaultedTotal prometheus.Counter
	policyLoadsTotal         *prometheus.CounterVec
	policyCategoryCount      prometheus.Gauge
}

// NewPrometheusMetricsRecorder creates a new Prometheus metrics recorder
// using the default Prometheus registry.
func NewPrometheusMetricsRecorder() *PrometheusMetricsRecorder {
	return NewPrometheusMetricsRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsRecorderWithRegistry creates a new Prometheus metrics recorder
// with a custom registry. Use this for testing.
func NewPrometheusMetricsRecorderWithRegistry(reg prometheus.Registerer) *PrometheusMetricsRecorder {
	filterApplicationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "category_filter_applications_total",
		Help: "Total category filter applications against a requested-attribute list",
	}, []string{"sp_entity_id"})

	attributesRemovedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "category_filter_attributes_removed_total",
		Help: "Total requested attributes removed as unjustified",
	})

	requestedDefaultedTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "category_filter_requested_defaulted_total",
		Help: "Total default requested-attribute sets synthesized",
	}, []string{"sp_entity_id"})

	attributesDefaultedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "category_filter_attributes_defaulted_total",
		Help: "Total attributes placed into synthesized default sets",
	})

	policyLoadsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "category_filter_policy_loads_total",
		Help: "Total category policy load attempts",
	}, []string{"source", "result"})

	policyCategoryCount := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "category_filter_policy_categories",
		Help: "Current number of configured entity categories",
	})

	reg.MustRegister(
		filterApplicationsTotal,
		attributesRemovedTotal,
		requestedDefaultedTotal,
		attributesDefaultedTotal,
		policyLoadsTotal,
		policyCategoryCount,
	)

	return &PrometheusMetricsRecorder{
		filterApplicationsTotal:  filterApplicationsTotal,
		attributesRemovedTotal:   attributesRemovedTotal,
		requestedDefaultedTotal:  requestedDefaultedTotal,
		attributesDefaultedTotal: attributesDefaultedTotal,
		policyLoadsTotal:         policyLoadsTotal,
		policyCategoryCount:      policyCategoryCount,
	}
}

// RecordFilterApplied records one filter application against a destination.
func (p *PrometheusMetricsRecorder) RecordFilterApplied(spEntityID string, removed int) {
	p.filterApplicationsTotal.WithLabelValues(spEntityID).Inc()
	if removed > 0 {
		p.attributesRemovedTotal.Add(float64(removed))
	}
}

// RecordRequestedDefaulted records synthesis of a default requested set.
func (p *PrometheusMetricsRecorder) RecordRequestedDefaulted(spEntityID string, synthesized int) {
	p.requestedDefaultedTotal.WithLabelValues(spEntityID).Inc()
	if synthesized > 0 {
		p.attributesDefaultedTotal.Add(float64(synthesized))
	}
}

// RecordPolicyLoad records a policy load attempt.
func (p *PrometheusMetricsRecorder) RecordPolicyLoad(source string, success bool, categoryCount int) {
	result := "failure"
	if success {
		result = "success"
	}
	p.policyLoadsTotal.WithLabelValues(source, result).Inc()
	if success {
		p.policyCategoryCount.Set(float64(categoryCount))
	}
}
