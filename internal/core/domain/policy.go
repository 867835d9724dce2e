package domain

// Reserved configuration option names. Every other key in a policy
// configuration mapping is a category identifier.
const (
	OptionDefault                  = "default"
	OptionStrict                   = "strict"
	OptionAllowRequestedAttributes = "allowRequestedAttributes"
)

// CategoryPolicy maps entity-category URIs to the attribute names an identity
// provider considers releasable to members of that category, together with
// three boolean switches controlling how the requested-attribute list of a
// destination is rewritten.
//
// A CategoryPolicy is immutable after construction and may be shared across
// concurrently processed requests without synchronization.
type CategoryPolicy struct {
	categories               map[string][]string
	defaultWhenUnrequested   bool
	strict                   bool
	allowRequestedAttributes bool
}

// PolicyOption is a functional option for configuring a CategoryPolicy.
type PolicyOption func(*CategoryPolicy)

// WithDefaultWhenUnrequested returns an option controlling whether a default
// requested-attribute set is synthesized for destinations that requested no
// attributes at all. Disabled by default.
func WithDefaultWhenUnrequested(enabled bool) PolicyOption {
	return func(p *CategoryPolicy) {
		p.defaultWhenUnrequested = enabled
	}
}

// WithStrict returns an option controlling strict mode: whether requested
// attributes not justified by any matched category are removed. Enabled by
// default.
func WithStrict(enabled bool) PolicyOption {
	return func(p *CategoryPolicy) {
		p.strict = enabled
	}
}

// WithAllowRequestedAttributes returns an option controlling whether every
// already-requested attribute counts as justified regardless of category
// membership, disabling the filtering test. Disabled by default.
func WithAllowRequestedAttributes(enabled bool) PolicyOption {
	return func(p *CategoryPolicy) {
		p.allowRequestedAttributes = enabled
	}
}

// NewCategoryPolicy creates a policy from a typed category map.
// The map and its attribute lists are copied; later changes to the arguments
// do not affect the policy.
func NewCategoryPolicy(categories map[string][]string, opts ...PolicyOption) *CategoryPolicy {
	p := &CategoryPolicy{
		categories: make(map[string][]string, len(categories)),
		strict:     true,
	}
	for category, attrs := range categories {
		copied := make([]string, len(attrs))
		copy(copied, attrs)
		p.categories[category] = copied
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewCategoryPolicyFromMap creates a policy from a generic configuration
// mapping, validating it eagerly. Recognized option keys are "default",
// "strict" and "allowRequestedAttributes", each requiring a boolean value;
// every other key is a category identifier whose value must be a list of
// attribute-name strings.
//
// Validation failures return an *AppError with code ErrCodeInvalidOptionType
// or ErrCodeInvalidCategoryConfiguration. When the mapping contains multiple
// invalid entries, which one is reported is unspecified.
func NewCategoryPolicyFromMap(config map[string]any) (*CategoryPolicy, error) {
	p := &CategoryPolicy{
		categories: make(map[string][]string),
		strict:     true,
	}

	for key, value := range config {
		switch key {
		case OptionDefault, OptionStrict, OptionAllowRequestedAttributes:
			b, ok := value.(bool)
			if !ok {
				return nil, InvalidOptionTypeError(key, value)
			}
			switch key {
			case OptionDefault:
				p.defaultWhenUnrequested = b
			case OptionStrict:
				p.strict = b
			case OptionAllowRequestedAttributes:
				p.allowRequestedAttributes = b
			}
		default:
			// A purely numeric key means the category identifier was omitted
			// and the entry ended up positional.
			if _, isNum := positionalIndex(key); isNum {
				return nil, MissingCategoryIdentifierError(value)
			}
			attrs, ok := attributeList(value)
			if !ok {
				return nil, InvalidCategoryAttributeListError(key)
			}
			p.categories[key] = attrs
		}
	}

	return p, nil
}

// attributeList converts a configuration value to an attribute-name list.
// Accepts []string directly and []any whose elements are all strings (the
// shape generic YAML/JSON decoding produces).
func attributeList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		copied := make([]string, len(v))
		copy(copied, v)
		return copied, true
	case []any:
		attrs := make([]string, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, false
			}
			attrs[i] = s
		}
		return attrs, true
	default:
		return nil, false
	}
}

// CategoryAttributes returns the allowed attribute names for a category and
// whether the category is configured. The returned slice must not be modified.
func (p *CategoryPolicy) CategoryAttributes(category string) ([]string, bool) {
	attrs, ok := p.categories[category]
	return attrs, ok
}

// CategoryCount returns the number of configured categories.
func (p *CategoryPolicy) CategoryCount() int {
	return len(p.categories)
}

// DefaultWhenUnrequested reports whether a default requested-attribute set is
// synthesized for destinations that requested no attributes.
func (p *CategoryPolicy) DefaultWhenUnrequested() bool {
	return p.defaultWhenUnrequested
}

// Strict reports whether unjustified requested attributes are removed.
func (p *CategoryPolicy) Strict() bool {
	return p.strict
}

// AllowRequestedAttributes reports whether every requested attribute counts
// as justified.
func (p *CategoryPolicy) AllowRequestedAttributes() bool {
	return p.allowRequestedAttributes
}
