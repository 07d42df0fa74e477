package domain

import "path"

// HeaderEntry is one exposed header: its short logical name (how local code
// includes it), its fully-qualified name under the owning target's namespace,
// and the source providing its content.
type HeaderEntry struct {
	Name     string
	FullName string
	Source   SourcePath
}

// HeaderMap is an insertion-ordered collection of header entries, keyed by
// fully-qualified name.
type HeaderMap struct {
	entries *NamedMap[HeaderEntry]
}

// NewHeaderMap creates an empty HeaderMap.
func NewHeaderMap() HeaderMap {
	return HeaderMap{entries: NewNamedMap[HeaderEntry]()}
}

// Add records a header under the given namespace. The short name is the
// logical name as declared; the full name is the namespace-qualified path.
func (m HeaderMap) Add(namespace, name string, source SourcePath) {
	e := HeaderEntry{
		Name:     name,
		FullName: path.Join(namespace, name),
		Source:   source,
	}
	m.entries.Put(e.FullName, e)
}

// AddAll copies every entry of o into m.
func (m HeaderMap) AddAll(o HeaderMap) {
	for _, e := range o.entries.All() {
		m.entries.Put(e.FullName, e)
	}
}

// Len returns the number of entries.
func (m HeaderMap) Len() int { return m.entries.Len() }

// Entries returns the entries in insertion order.
func (m HeaderMap) Entries() []HeaderEntry {
	out := make([]HeaderEntry, 0, m.entries.Len())
	for _, e := range m.entries.All() {
		out = append(out, e)
	}
	return out
}
