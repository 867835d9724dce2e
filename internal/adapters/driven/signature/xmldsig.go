package signature

import (
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"
	"go.uber.org/zap"
)

// ErrSignatureInvalid is returned when a metadata signature is missing,
// malformed, or does not verify against the trust anchors.
var ErrSignatureInvalid = errors.New("metadata signature invalid")

// XMLDsigVerifier verifies XML signatures on metadata documents using
// goxmldsig. Entity categories should only be trusted from metadata whose
// enveloped signature verifies against the federation's signing certificate.
type XMLDsigVerifier struct {
	certStore dsig.X509CertificateStore
	certs     []*x509.Certificate // kept for logging cert details on success
	logger    *zap.Logger
}

// NewXMLDsigVerifier creates a verifier with a single trust anchor certificate.
func NewXMLDsigVerifier(cert *x509.Certificate) *XMLDsigVerifier {
	return NewXMLDsigVerifierWithCerts([]*x509.Certificate{cert})
}

// NewXMLDsigVerifierWithCerts creates a verifier with multiple trust anchor
// certificates. This supports certificate rollover scenarios.
func NewXMLDsigVerifierWithCerts(certs []*x509.Certificate) *XMLDsigVerifier {
	return &XMLDsigVerifier{
		certStore: &dsig.MemoryX509CertificateStore{
			Roots: certs,
		},
		certs: certs,
	}
}

// NewXMLDsigVerifierWithLogger creates a verifier that logs verification events.
func NewXMLDsigVerifierWithLogger(certs []*x509.Certificate, logger *zap.Logger) *XMLDsigVerifier {
	v := NewXMLDsigVerifierWithCerts(certs)
	v.logger = logger
	return v
}

// Verify validates the XML signature on metadata and returns the validated
// XML bytes. The returned bytes are re-serialized from the validated element
// to prevent signature wrapping attacks.
func (v *XMLDsigVerifier) Verify(data []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: parse metadata XML: %v", ErrSignatureInvalid, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: empty XML document", ErrSignatureInvalid)
	}

	ctx := dsig.NewDefaultValidationContext(v.certStore)

	validated, err := ctx.Validate(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	if v.logger != nil && len(v.certs) > 0 {
		cert := v.certs[0]
		v.logger.Info("metadata signature verified",
			zap.String("cert_subject", cert.Subject.String()),
			zap.Time("cert_expiry", cert.NotAfter),
		)
	}

	validatedDoc := etree.NewDocument()
	validatedDoc.SetRoot(validated)
	result, err := validatedDoc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize validated metadata: %w", err)
	}
	return result, nil
}
