package ports

import (
	"github.com/philiph/saml-category-filter/internal/core/domain"
)

// RequestContext is the contract the authentication pipeline exposes to
// processing filters for a single request. Each invocation owns its context;
// contexts are never shared across requests.
type RequestContext interface {
	// PeerEntityID returns the entityID of the destination service provider.
	PeerEntityID() string

	// DeclaredCategories returns the destination's declared entity categories.
	DeclaredCategories() domain.DeclaredCategories

	// RequestedAttributes returns the destination's current requested-attribute list.
	RequestedAttributes() domain.RequestedAttributes

	// SetRequestedAttributes replaces the requested-attribute list on the context.
	SetRequestedAttributes(domain.RequestedAttributes)
}
