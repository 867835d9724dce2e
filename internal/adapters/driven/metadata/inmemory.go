package metadata

import (
	"sync"

	"github.com/philiph/saml-category-filter/internal/core/domain"
)

// InMemoryCategorySource is an in-memory implementation of CategorySource.
// Suitable for testing and for pipelines that load metadata once at startup.
type InMemoryCategorySource struct {
	mu       sync.RWMutex
	entities map[string]SPInfo
}

// NewInMemoryCategorySource creates a category source over parsed SP infos.
func NewInMemoryCategorySource(infos ...SPInfo) *InMemoryCategorySource {
	s := &InMemoryCategorySource{
		entities: make(map[string]SPInfo, len(infos)),
	}
	for _, info := range infos {
		s.entities[info.EntityID] = info
	}
	return s
}

// Add inserts or replaces an entity.
func (s *InMemoryCategorySource) Add(info SPInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[info.EntityID] = info
}

// Categories returns the declared entity categories for an entityID.
// Returns domain.ErrEntityNotFound when the entity is unknown.
func (s *InMemoryCategorySource) Categories(entityID string) (domain.DeclaredCategories, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.entities[entityID]
	if !ok {
		return domain.NoDeclaredCategories(), domain.ErrEntityNotFound
	}
	return info.DeclaredCategories(), nil
}
