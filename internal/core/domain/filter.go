package domain

// Apply computes the updated requested-attribute list for a destination with
// the given declared entity categories.
//
// This is a pure function with no side effects or I/O: neither the policy nor
// the arguments are mutated, and the same inputs always produce the same
// output. Writing the result back onto a request context is a caller-side
// concern.
//
// Behavior:
//  1. A destination without entity-category data is left untouched.
//  2. A destination without a requested-attribute list is left untouched,
//     unless default synthesis is enabled, in which case the union of the
//     allowed attributes of every matched declared category becomes the new
//     list (deduplicated, possibly empty).
//  3. Otherwise each entry is kept if justified and removed only when
//     unjustified in strict mode. Entry order and key style are preserved.
//
// An attribute is justified when the policy allows every requested attribute
// outright, or when any declared category known to the policy lists it.
// Declared categories the policy does not configure are silently skipped.
func (p *CategoryPolicy) Apply(declared DeclaredCategories, requested RequestedAttributes) RequestedAttributes {
	if !declared.Present() {
		return requested
	}

	if !requested.Present() {
		if !p.defaultWhenUnrequested {
			return requested
		}
		return p.defaultRequested(declared)
	}

	kept := make([]RequestedAttribute, 0, len(requested.entries))
	for _, entry := range requested.entries {
		if p.justified(entry.Name, declared) {
			kept = append(kept, entry)
			continue
		}
		if !p.strict {
			// Left for the external attribute-limit collaborator.
			kept = append(kept, entry)
		}
	}
	return RequestedAttributes{present: true, entries: kept}
}

// justified reports whether an attribute name is justified for the declared
// categories: either every requested attribute is allowed, or some declared
// category configured in the policy lists the name (OR across categories,
// short-circuiting on the first match).
func (p *CategoryPolicy) justified(name string, declared DeclaredCategories) bool {
	if p.allowRequestedAttributes {
		return true
	}
	for _, category := range declared.Values() {
		allowed, ok := p.categories[category]
		if !ok {
			continue
		}
		for _, attr := range allowed {
			if attr == name {
				return true
			}
		}
	}
	return false
}

// defaultRequested synthesizes a requested-attribute set as the union of the
// allowed attributes of every declared category the policy configures.
// Duplicates are eliminated; entries follow declaration order, then the
// configured attribute order within each category.
func (p *CategoryPolicy) defaultRequested(declared DeclaredCategories) RequestedAttributes {
	seen := make(map[string]struct{})
	entries := make([]RequestedAttribute, 0)
	for _, category := range declared.Values() {
		for _, attr := range p.categories[category] {
			if _, dup := seen[attr]; dup {
				continue
			}
			seen[attr] = struct{}{}
			entries = append(entries, RequestedAttribute{Name: attr, Key: attr})
		}
	}
	return RequestedAttributes{present: true, entries: entries}
}
