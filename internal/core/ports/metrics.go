package ports

// MetricsRecorder is the port interface for recording metrics.
// Implementations are adapters (PrometheusMetricsRecorder for production,
// NoopMetricsRecorder for disabled/testing).
type MetricsRecorder interface {
	// RecordFilterApplied records one filter application against a
	// destination, with the number of requested attributes removed.
	RecordFilterApplied(spEntityID string, removed int)

	// RecordRequestedDefaulted records synthesis of a default
	// requested-attribute set, with the number of attributes synthesized.
	RecordRequestedDefaulted(spEntityID string, synthesized int)

	// RecordPolicyLoad records a policy load attempt.
	RecordPolicyLoad(source string, success bool, categoryCount int)
}
