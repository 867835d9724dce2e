package ports

// SignatureVerifier is the port interface for verifying XML signatures on
// metadata documents before their entity categories are trusted.
type SignatureVerifier interface {
	// Verify validates the signature and returns the validated XML bytes.
	// Returns an error if the signature is invalid, missing, or cannot be
	// verified.
	Verify(data []byte) ([]byte, error)
}
