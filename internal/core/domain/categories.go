package domain

// DeclaredCategories holds the entity-category values a destination service
// provider publishes in its metadata (mdattr:EntityAttributes with
// Name="http://macedir.org/entity-category").
//
// It distinguishes a destination that publishes no entity-category data at
// all from one that publishes an empty value list: the filter is a no-op for
// the former, while the latter participates in default synthesis.
type DeclaredCategories struct {
	present bool
	values  []string
}

// NoDeclaredCategories returns the absent value: the destination makes no
// entity-category claims.
func NoDeclaredCategories() DeclaredCategories {
	return DeclaredCategories{}
}

// DeclaredCategoriesOf returns a present value with the given category URIs.
// The list may be empty.
func DeclaredCategoriesOf(values ...string) DeclaredCategories {
	copied := make([]string, len(values))
	copy(copied, values)
	return DeclaredCategories{present: true, values: copied}
}

// Present reports whether the destination published any entity-category data.
func (d DeclaredCategories) Present() bool {
	return d.present
}

// Values returns the declared category URIs in declaration order.
// The returned slice must not be modified.
func (d DeclaredCategories) Values() []string {
	return d.values
}
