package domain

// SourceList is the declared shape of a source-like target parameter: either
// an ordered list (logical names derived from the underlying paths) or an
// explicit mapping from logical name to entry. The union is resolved exactly
// once, at classification time; the canonical NamedMap form is what flows
// through the pipeline.
type SourceList[V any] struct {
	List  []V
	Named *NamedMap[V]
}

// SourceListOf wraps an ordered list.
func SourceListOf[V any](entries ...V) SourceList[V] {
	return SourceList[V]{List: entries}
}

// NamedSourceListOf wraps an explicit name mapping.
func NamedSourceListOf[V any](named *NamedMap[V]) SourceList[V] {
	return SourceList[V]{Named: named}
}

// IsNamed reports whether the explicit-mapping form was declared.
func (s SourceList[V]) IsNamed() bool { return s.Named != nil }

// IsEmpty reports whether the parameter was omitted entirely.
func (s SourceList[V]) IsEmpty() bool {
	return s.Named == nil && len(s.List) == 0
}
