package metrics

// NoopMetricsRecorder is a no-op implementation for when metrics are disabled.
// All methods are safe to call and do nothing.
type NoopMetricsRecorder struct{}

// NewNoopMetricsRecorder creates a new no-op metrics recorder.
func NewNoopMetricsRecorder() *NoopMetricsRecorder {
	return &NoopMetricsRecorder{}
}

// RecordFilterApplied is a no-op.
func (n *NoopMetricsRecorder) RecordFilterApplied(spEntityID string, removed int) {}

// RecordRequestedDefaulted is a no-op.
func (n *NoopMetricsRecorder) RecordRequestedDefaulted(spEntityID string, synthesized int) {}

// RecordPolicyLoad is a no-op.
func (n *NoopMetricsRecorder) RecordPolicyLoad(source string, success bool, categoryCount int) {}
