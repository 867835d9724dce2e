package signature

// NoopVerifier is a pass-through verifier for deployments that obtain
// metadata over an already-authenticated channel.
type NoopVerifier struct{}

// NewNoopVerifier creates a new no-op verifier.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// Verify returns the input unchanged.
func (n *NoopVerifier) Verify(data []byte) ([]byte, error) {
	return data, nil
}
