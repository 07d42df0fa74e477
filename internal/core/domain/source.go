package domain

import (
	"iter"
	"path"
)

// CxxSourceType classifies a compilable source by language.
type CxxSourceType string

const (
	SourceTypeC         CxxSourceType = "c"
	SourceTypeCxx       CxxSourceType = "cxx"
	SourceTypeAssembler CxxSourceType = "assembler"
)

// sourceTypeByExtension maps file extensions to source types.
var sourceTypeByExtension = map[string]CxxSourceType{
	".c":   SourceTypeC,
	".cc":  SourceTypeCxx,
	".cpp": SourceTypeCxx,
	".cxx": SourceTypeCxx,
	".s":   SourceTypeAssembler,
	".S":   SourceTypeAssembler,
}

// SourceTypeFromExtension classifies a source path by its file extension.
func SourceTypeFromExtension(p string) (CxxSourceType, bool) {
	t, ok := sourceTypeByExtension[path.Ext(p)]
	return t, ok
}

// CxxSource is a compilable translation unit: its language, the input path,
// and per-source compiler flags.
type CxxSource struct {
	Type  CxxSourceType
	Path  SourcePath
	Flags []string
}

// SourceWithFlags pairs a declared source path with its per-source flag
// overrides, before classification.
type SourceWithFlags struct {
	Path SourcePath
	// Type overrides extension-based classification when non-empty.
	Type  CxxSourceType
	Flags []string
}

// NewCxxSource classifies a declared source into a CxxSource.
func NewCxxSource(s SourceWithFlags) (CxxSource, error) {
	t := s.Type
	if t == "" {
		var ok bool
		t, ok = SourceTypeFromExtension(s.Path.Resolve())
		if !ok {
			return CxxSource{}, WithDetail(ErrUnknownSourceType, "path", s.Path.String())
		}
	}
	return CxxSource{Type: t, Path: s.Path, Flags: s.Flags}, nil
}

// NamedMap is an insertion-ordered map from logical name to V. Iteration
// order is the order in which names were first added, which downstream
// pipeline stages rely on for deterministic rule and output ordering.
type NamedMap[V any] struct {
	names   []string
	entries map[string]V
}

// NewNamedMap creates an empty NamedMap.
func NewNamedMap[V any]() *NamedMap[V] {
	return &NamedMap[V]{entries: make(map[string]V)}
}

// Put adds or replaces the entry for name, preserving its original position
// when replacing.
func (m *NamedMap[V]) Put(name string, v V) {
	if _, ok := m.entries[name]; !ok {
		m.names = append(m.names, name)
	}
	m.entries[name] = v
}

// Get returns the entry for name.
func (m *NamedMap[V]) Get(name string) (V, bool) {
	v, ok := m.entries[name]
	return v, ok
}

// Has reports whether name is present.
func (m *NamedMap[V]) Has(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// Len returns the number of entries.
func (m *NamedMap[V]) Len() int { return len(m.names) }

// Names returns the names in insertion order. The returned slice must not be
// mutated.
func (m *NamedMap[V]) Names() []string { return m.names }

// All returns an iterator over entries in insertion order.
func (m *NamedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, name := range m.names {
			if !yield(name, m.entries[name]) {
				return
			}
		}
	}
}

// SourceMap is an insertion-ordered map from logical name to SourcePath.
type SourceMap = NamedMap[SourcePath]

// CxxSourceMap is an insertion-ordered map from logical name to CxxSource.
type CxxSourceMap = NamedMap[CxxSource]
