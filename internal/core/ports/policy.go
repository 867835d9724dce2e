package ports

import (
	"context"

	"github.com/philiph/saml-category-filter/internal/core/domain"
)

// PolicySource is the port interface for loading a category policy from
// configuration. Implementations are adapters (FilePolicySource for
// production, MapPolicySource for embedding and testing).
type PolicySource interface {
	// Load reads, validates and returns the policy.
	Load(ctx context.Context) (*domain.CategoryPolicy, error)
}
