package ports

import (
	"github.com/philiph/saml-category-filter/internal/core/domain"
)

// CategorySource resolves the entity categories a destination declares in
// federation metadata.
type CategorySource interface {
	// Categories returns the declared entity categories for an entityID.
	// Returns domain.ErrEntityNotFound when the entity is unknown.
	Categories(entityID string) (domain.DeclaredCategories, error)
}
