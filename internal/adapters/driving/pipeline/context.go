package pipeline

import (
	"github.com/philiph/saml-category-filter/internal/core/domain"
	"github.com/philiph/saml-category-filter/internal/core/ports"
)

// AuthnContext is the per-request context the authentication pipeline hands
// to processing filters. It owns the mutable requested-attribute list for one
// request and must not be shared across requests.
type AuthnContext struct {
	peerEntityID string
	declared     domain.DeclaredCategories
	requested    domain.RequestedAttributes
}

// NewAuthnContext creates a context for a destination with known declared
// categories and requested attributes.
func NewAuthnContext(peerEntityID string, declared domain.DeclaredCategories, requested domain.RequestedAttributes) *AuthnContext {
	return &AuthnContext{
		peerEntityID: peerEntityID,
		declared:     declared,
		requested:    requested,
	}
}

// NewAuthnContextFromSource creates a context resolving the destination's
// declared categories from a metadata-backed source. An entity the source
// does not know is treated as making no category claims, which makes the
// filter a no-op for it.
func NewAuthnContextFromSource(peerEntityID string, source ports.CategorySource, requested domain.RequestedAttributes) *AuthnContext {
	declared, err := source.Categories(peerEntityID)
	if err != nil {
		declared = domain.NoDeclaredCategories()
	}
	return NewAuthnContext(peerEntityID, declared, requested)
}

// PeerEntityID returns the entityID of the destination service provider.
func (c *AuthnContext) PeerEntityID() string {
	return c.peerEntityID
}

// DeclaredCategories returns the destination's declared entity categories.
func (c *AuthnContext) DeclaredCategories() domain.DeclaredCategories {
	return c.declared
}

// RequestedAttributes returns the current requested-attribute list.
func (c *AuthnContext) RequestedAttributes() domain.RequestedAttributes {
	return c.requested
}

// SetRequestedAttributes replaces the requested-attribute list.
func (c *AuthnContext) SetRequestedAttributes(requested domain.RequestedAttributes) {
	c.requested = requested
}
