package pipeline

import (
	"go.uber.org/zap"

	"github.com/philiph/saml-category-filter/internal/adapters/driven/metrics"
	"github.com/philiph/saml-category-filter/internal/core/domain"
	"github.com/philiph/saml-category-filter/internal/core/ports"
)

// CategoryFilter is the authentication processing step that rewrites a
// destination's requested-attribute list according to its declared entity
// categories. It never removes attributes from assertions itself; the
// downstream attribute-limit collaborator reads the list this filter leaves
// behind.
//
// A CategoryFilter is safe for concurrent use: the policy is immutable and
// per-request state lives in the RequestContext.
type CategoryFilter struct {
	policy  *domain.CategoryPolicy
	logger  *zap.Logger
	metrics ports.MetricsRecorder
}

// FilterOption is a functional option for configuring a CategoryFilter.
type FilterOption func(*CategoryFilter)

// WithLogger returns an option that sets the logger for filter decisions.
func WithLogger(logger *zap.Logger) FilterOption {
	return func(f *CategoryFilter) {
		f.logger = logger
	}
}

// WithMetricsRecorder returns an option that records filter outcomes.
func WithMetricsRecorder(recorder ports.MetricsRecorder) FilterOption {
	return func(f *CategoryFilter) {
		f.metrics = recorder
	}
}

// NewCategoryFilter creates a filter over a validated policy.
func NewCategoryFilter(policy *domain.CategoryPolicy, opts ...FilterOption) *CategoryFilter {
	f := &CategoryFilter{
		policy:  policy,
		logger:  zap.NewNop(),
		metrics: metrics.NewNoopMetricsRecorder(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Process applies the category policy to one authentication request, writing
// the updated requested-attribute list back onto the context.
//
// It never fails: a destination without entity-category data, or without a
// requested-attribute list when default synthesis is off, leaves the context
// untouched.
func (f *CategoryFilter) Process(rc ports.RequestContext) {
	if rc == nil {
		return
	}

	declared := rc.DeclaredCategories()
	requested := rc.RequestedAttributes()

	if !declared.Present() {
		f.logger.Debug("no entity categories declared, skipping",
			zap.String("sp_entity_id", rc.PeerEntityID()),
		)
		return
	}

	updated := f.policy.Apply(declared, requested)

	if !requested.Present() {
		if !updated.Present() {
			f.logger.Debug("no attributes requested and default synthesis disabled",
				zap.String("sp_entity_id", rc.PeerEntityID()),
			)
			return
		}
		rc.SetRequestedAttributes(updated)
		f.metrics.RecordRequestedDefaulted(rc.PeerEntityID(), updated.Len())
		f.logger.Info("synthesized default requested attributes",
			zap.String("sp_entity_id", rc.PeerEntityID()),
			zap.Strings("categories", declared.Values()),
			zap.Strings("attributes", updated.Names()),
		)
		return
	}

	removed := requested.Len() - updated.Len()
	rc.SetRequestedAttributes(updated)
	f.metrics.RecordFilterApplied(rc.PeerEntityID(), removed)
	f.logger.Debug("filtered requested attributes",
		zap.String("sp_entity_id", rc.PeerEntityID()),
		zap.Strings("categories", declared.Values()),
		zap.Int("removed", removed),
		zap.Strings("remaining", updated.Names()),
	)
}
