package policyconfig

import (
	"context"

	"github.com/philiph/saml-category-filter/internal/core/domain"
)

// MapPolicySource builds a category policy from an in-memory configuration
// mapping. Suitable for embedding the policy in a larger configuration
// surface and for testing.
type MapPolicySource struct {
	config map[string]any
}

// NewMapPolicySource creates a policy source over a configuration mapping.
// The mapping is validated on Load, not here.
func NewMapPolicySource(config map[string]any) *MapPolicySource {
	return &MapPolicySource{config: config}
}

// Load validates the mapping and returns the policy.
func (s *MapPolicySource) Load(ctx context.Context) (*domain.CategoryPolicy, error) {
	return domain.NewCategoryPolicyFromMap(s.config)
}
