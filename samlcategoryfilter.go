// Package samlcategoryfilter implements an authentication processing filter
// for federated identity providers: given the entity categories a service
// provider declares in federation metadata, it rewrites the set of attributes
// requested for that service provider. Actual attribute removal from the
// outgoing assertion is left to a downstream attribute-limiting filter.
package samlcategoryfilter

import (
	"github.com/philiph/saml-category-filter/internal/adapters/driven/metadata"
	"github.com/philiph/saml-category-filter/internal/adapters/driven/metrics"
	"github.com/philiph/saml-category-filter/internal/adapters/driven/policyconfig"
	"github.com/philiph/saml-category-filter/internal/adapters/driven/signature"
	"github.com/philiph/saml-category-filter/internal/adapters/driving/pipeline"
	"github.com/philiph/saml-category-filter/internal/core/domain"
	"github.com/philiph/saml-category-filter/internal/core/ports"
)

// Re-export core domain types
type CategoryPolicy = domain.CategoryPolicy
type PolicyOption = domain.PolicyOption
type DeclaredCategories = domain.DeclaredCategories
type RequestedAttribute = domain.RequestedAttribute
type RequestedAttributes = domain.RequestedAttributes

// Re-export port types for consumers that implement their own adapters
type RequestContext = ports.RequestContext
type CategorySource = ports.CategorySource
type PolicySource = ports.PolicySource
type MetricsRecorder = ports.MetricsRecorder
type SignatureVerifier = ports.SignatureVerifier

// Re-export the pipeline step and its context
type CategoryFilter = pipeline.CategoryFilter
type FilterOption = pipeline.FilterOption
type AuthnContext = pipeline.AuthnContext

// Re-export metadata types
type SPInfo = metadata.SPInfo

// Re-export constructors
var (
	NewCategoryPolicy            = domain.NewCategoryPolicy
	NewCategoryPolicyFromMap     = domain.NewCategoryPolicyFromMap
	WithDefaultWhenUnrequested   = domain.WithDefaultWhenUnrequested
	WithStrict                   = domain.WithStrict
	WithAllowRequestedAttributes = domain.WithAllowRequestedAttributes

	NoDeclaredCategories           = domain.NoDeclaredCategories
	DeclaredCategoriesOf           = domain.DeclaredCategoriesOf
	AbsentRequestedAttributes      = domain.AbsentRequestedAttributes
	RequestedAttributesFromNames   = domain.RequestedAttributesFromNames
	RequestedAttributesFromEntries = domain.RequestedAttributesFromEntries
	RequestedAttributesFromMap     = domain.RequestedAttributesFromMap

	NewCategoryFilter         = pipeline.NewCategoryFilter
	WithLogger                = pipeline.WithLogger
	WithMetricsRecorder       = pipeline.WithMetricsRecorder
	NewAuthnContext           = pipeline.NewAuthnContext
	NewAuthnContextFromSource = pipeline.NewAuthnContextFromSource

	NewFilePolicySource = policyconfig.NewFilePolicySource
	NewMapPolicySource  = policyconfig.NewMapPolicySource

	ParseSPCategories         = metadata.ParseSPCategories
	NewInMemoryCategorySource = metadata.NewInMemoryCategorySource

	NewXMLDsigVerifier          = signature.NewXMLDsigVerifier
	NewXMLDsigVerifierWithCerts = signature.NewXMLDsigVerifierWithCerts
	NewNoopVerifier             = signature.NewNoopVerifier

	NewPrometheusMetricsRecorder = metrics.NewPrometheusMetricsRecorder
	NewNoopMetricsRecorder       = metrics.NewNoopMetricsRecorder
)

// Re-export well-known attribute names
const (
	EntityCategoryAttributeName         = metadata.EntityCategoryAttributeName
	AssuranceCertificationAttributeName = metadata.AssuranceCertificationAttributeName
)

// Re-export policy configuration option keys
const (
	OptionDefault                  = domain.OptionDefault
	OptionStrict                   = domain.OptionStrict
	OptionAllowRequestedAttributes = domain.OptionAllowRequestedAttributes
)
