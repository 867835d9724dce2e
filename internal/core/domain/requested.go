package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// RequestedAttribute is one normalized entry of a requested-attribute list.
//
// The inbound list admits two encodings: entries keyed by attribute name
// (carrying arbitrary metadata as the value) and positional entries whose
// value is the attribute name itself. Both are normalized here and
// re-serialized in their original style.
type RequestedAttribute struct {
	// Name is the attribute name this entry refers to.
	Name string

	// Key is the original key of the entry. For positional entries this is
	// the positional index rendered as a string (e.g. "0").
	Key string

	// Value is the metadata carried by a named entry. Nil for positional entries.
	Value any

	// Positional marks an entry keyed by position rather than by name.
	// Its name came from the entry value and is re-serialized the same way.
	Positional bool
}

// RequestedAttributes is the normalized requested-attribute list for a
// destination service provider. It distinguishes an absent list (the
// destination requested no attributes at all) from a present but empty one.
type RequestedAttributes struct {
	present bool
	entries []RequestedAttribute
}

// AbsentRequestedAttributes returns the absent value: the destination has no
// requested-attribute list at all.
func AbsentRequestedAttributes() RequestedAttributes {
	return RequestedAttributes{}
}

// RequestedAttributesFromNames builds a present list of positional entries
// from plain attribute names, preserving order.
func RequestedAttributesFromNames(names ...string) RequestedAttributes {
	entries := make([]RequestedAttribute, len(names))
	for i, name := range names {
		entries[i] = RequestedAttribute{
			Name:       name,
			Key:        strconv.Itoa(i),
			Positional: true,
		}
	}
	return RequestedAttributes{present: true, entries: entries}
}

// RequestedAttributesFromEntries builds a present list from already
// normalized entries, preserving order.
func RequestedAttributesFromEntries(entries []RequestedAttribute) RequestedAttributes {
	copied := make([]RequestedAttribute, len(entries))
	copy(copied, entries)
	return RequestedAttributes{present: true, entries: copied}
}

// RequestedAttributesFromMap normalizes a generic requested-attribute mapping.
// Keys that are purely numeric are treated as positional indexes whose value
// is the attribute name; all other keys are attribute names carrying the
// value as metadata.
//
// Go maps carry no insertion order, so entries are ordered deterministically:
// positional entries first in numeric order, then named entries in
// lexicographic order.
func RequestedAttributesFromMap(m map[string]any) RequestedAttributes {
	if m == nil {
		return AbsentRequestedAttributes()
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iNum := positionalIndex(keys[i])
		nj, jNum := positionalIndex(keys[j])
		if iNum && jNum {
			return ni < nj
		}
		if iNum != jNum {
			return iNum // positional entries first
		}
		return keys[i] < keys[j]
	})

	entries := make([]RequestedAttribute, 0, len(keys))
	for _, key := range keys {
		if _, isNum := positionalIndex(key); isNum {
			entries = append(entries, RequestedAttribute{
				Name:       attributeName(m[key]),
				Key:        key,
				Positional: true,
			})
			continue
		}
		entries = append(entries, RequestedAttribute{
			Name:  key,
			Key:   key,
			Value: m[key],
		})
	}
	return RequestedAttributes{present: true, entries: entries}
}

// Present reports whether the destination has a requested-attribute list.
func (r RequestedAttributes) Present() bool {
	return r.present
}

// Len returns the number of entries.
func (r RequestedAttributes) Len() int {
	return len(r.entries)
}

// Entries returns the normalized entries in order.
func (r RequestedAttributes) Entries() []RequestedAttribute {
	copied := make([]RequestedAttribute, len(r.entries))
	copy(copied, r.entries)
	return copied
}

// Names returns the attribute names in entry order.
func (r RequestedAttributes) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// ToMap re-serializes the list into the generic mapping form, preserving the
// original key style of each entry. Returns nil when the list is absent.
func (r RequestedAttributes) ToMap() map[string]any {
	if !r.present {
		return nil
	}
	m := make(map[string]any, len(r.entries))
	for _, e := range r.entries {
		if e.Positional {
			m[e.Key] = e.Name
			continue
		}
		m[e.Key] = e.Value
	}
	return m
}

// positionalIndex reports whether key is a purely numeric positional index,
// and its numeric value if so.
func positionalIndex(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}

// attributeName derives the attribute name from a positional entry value.
// Non-string values are rendered as strings rather than rejected: request
// data is never an error condition.
func attributeName(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
